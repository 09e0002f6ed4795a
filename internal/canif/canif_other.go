//go:build !linux

package canif

import "context"

func runAll(ctx context.Context, cmds [][]string) error {
	return ErrUnsupported
}
