// Package canif configures a SocketCAN network interface by shelling out
// to ip(8): bring the link down, program the bitrate, bring it back up.
package canif

import (
	"context"
	"errors"
)

// ErrUnsupported is returned on platforms without SocketCAN.
var ErrUnsupported = errors.New("SocketCAN link setup is only supported on Linux")

// LinkConfig describes the interface to (re)configure.
type LinkConfig struct {
	Device  string // e.g. "can0"
	Bitrate string // bits per second, forwarded verbatim to ip(8)
}

// upCommands returns the ip(8) argv sequence for a full reconfigure.
func upCommands(cfg LinkConfig) [][]string {
	return [][]string{
		{"ip", "link", "set", cfg.Device, "down"},
		{"ip", "link", "set", cfg.Device, "type", "can", "bitrate", cfg.Bitrate},
		{"ip", "link", "set", cfg.Device, "up"},
	}
}

// downCommands returns the argv sequence to take the link down.
func downCommands(device string) [][]string {
	return [][]string{
		{"ip", "link", "set", device, "down"},
	}
}

// Up reconfigures the link: down, set bitrate, up.
func Up(ctx context.Context, cfg LinkConfig) error {
	return runAll(ctx, upCommands(cfg))
}

// Down takes the link down.
func Down(ctx context.Context, device string) error {
	return runAll(ctx, downCommands(device))
}
