//go:build linux

package canif

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

func runAll(ctx context.Context, cmds [][]string) error {
	for _, argv := range cmds {
		slog.Debug("configuring CAN link", "command", strings.Join(argv, " "))

		c := exec.CommandContext(ctx, argv[0], argv[1:]...)
		var stderr bytes.Buffer
		c.Stderr = &stderr

		if err := c.Run(); err != nil {
			return fmt.Errorf("%s failed: %w, stderr: %s",
				strings.Join(argv, " "), err, strings.TrimSpace(stderr.String()))
		}
	}
	return nil
}
