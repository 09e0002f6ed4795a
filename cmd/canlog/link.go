package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/canif"
	"github.com/sensorbus/canlog/internal/conffile"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Configure the SocketCAN network interface (Linux)",
}

var linkUpCmd = &cobra.Command{
	Use:   "up [device]",
	Short: "Bring the CAN link up with the configured bitrate",
	Long: `Takes the CAN link down, programs the bitrate, and brings it back up.

The device defaults to the stored CHANNEL and the bitrate to BITRATE_NEW
when set, else BITRATE. Usually requires root.

Examples:
  canlog link up
  canlog link up can1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinkUp,
}

var linkDownCmd = &cobra.Command{
	Use:   "down [device]",
	Short: "Take the CAN link down",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLinkDown,
}

func init() {
	linkCmd.AddCommand(linkUpCmd)
	linkCmd.AddCommand(linkDownCmd)
}

func runLinkUp(cmd *cobra.Command, args []string) error {
	sess, err := conffile.NewStore(settings.Conf.Path).Session()
	if err != nil {
		return err
	}

	device := sess.Channel
	if len(args) == 1 {
		device = args[0]
	}
	if device == "" {
		device = "can0"
	}

	bitrate := sess.Bitrate
	if sess.BitrateNew != "" {
		bitrate = sess.BitrateNew
	}

	if err := canif.Up(cmd.Context(), canif.LinkConfig{Device: device, Bitrate: bitrate}); err != nil {
		return fmt.Errorf("configuring %s: %w", device, err)
	}
	fmt.Fprintf(cmd.OutOrStderr(), "%s up at %s bps\n", device, bitrate)
	return nil
}

func runLinkDown(cmd *cobra.Command, args []string) error {
	device := "can0"
	if len(args) == 1 {
		device = args[0]
	} else if sess, err := conffile.NewStore(settings.Conf.Path).Session(); err == nil && sess.Channel != "" {
		device = sess.Channel
	}

	if err := canif.Down(cmd.Context(), device); err != nil {
		return fmt.Errorf("taking %s down: %w", device, err)
	}
	fmt.Fprintf(cmd.OutOrStderr(), "%s down\n", device)
	return nil
}
