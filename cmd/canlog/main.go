package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/config"
	"github.com/sensorbus/canlog/internal/logger"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "canlog",
	Short: "canlog - CAN logging front end for Epson IMUs",
	Long: `canlog collects CAN logging parameters for Epson M-A552/M-G552PC1 IMUs,
stores them in conf_can.txt, and dispatches the vendor Python logger with
the matching flags.`,
	Example: `  # Answer the prompts once, then start logging
  canlog setup
  canlog run

  # Log three nodes on the bus, one after another
  canlog run 1 2 3

  # Reuse a saved parameter set
  canlog profile apply bench
  canlog run`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.Log.Format, cfg.Log.Level)
		settings = cfg
		return nil
	},
}

// settings holds the tool configuration loaded before any command runs.
var settings *config.Config

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "capture", Title: "Capture Commands:"},
		&cobra.Group{ID: "bus", Title: "Bus Commands:"},
		&cobra.Group{ID: "library", Title: "Library Commands:"},
	)

	setupCmd.GroupID = "capture"
	runCmd.GroupID = "capture"
	showCmd.GroupID = "capture"

	linkCmd.GroupID = "bus"

	profileCmd.GroupID = "library"
	runsCmd.GroupID = "library"
	cleanCmd.GroupID = "library"

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
