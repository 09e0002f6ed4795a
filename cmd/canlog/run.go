package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/canif"
	"github.com/sensorbus/canlog/internal/conffile"
	"github.com/sensorbus/canlog/internal/dispatch"
	"github.com/sensorbus/canlog/internal/store"
)

var (
	runDryRun   bool
	runSkipLink bool
)

var runCmd = &cobra.Command{
	Use:   "run [nodeID...]",
	Short: "Load conf_can.txt and dispatch the vendor logger",
	Long: `Loads the stored parameters and invokes the vendor Python logger.

With no arguments the logger runs once with the stored node ID. Each
positional argument is substituted as the CAN node ID for one sequential
invocation; a failing node does not stop the ones after it.

On Linux with a socketcan adapter, the CAN link is reconfigured first
(down, set bitrate, up) unless --skip-link is given.

Examples:
  canlog run
  canlog run 1 2 3
  canlog run --dry-run`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the logger command lines without executing")
	runCmd.Flags().BoolVar(&runSkipLink, "skip-link", false, "skip SocketCAN link setup")
}

func runRun(cmd *cobra.Command, args []string) error {
	confStore := conffile.NewStore(settings.Conf.Path)

	// A missing configuration file aborts before any child process starts.
	sess, err := confStore.Session()
	if err != nil {
		return err
	}

	opts := dispatch.Options{
		Python:    settings.Python.Interpreter,
		ScriptDir: settings.Python.ScriptDir,
		DryRun:    runDryRun,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	invs, err := dispatch.Plan(sess, args, opts)
	if err != nil {
		return err
	}

	if !runDryRun && !runSkipLink && sess.Interface == "socketcan" && runtime.GOOS == "linux" {
		bitrate := sess.Bitrate
		if sess.BitrateNew != "" {
			bitrate = sess.BitrateNew
		}
		if err := canif.Up(cmd.Context(), canif.LinkConfig{Device: sess.Channel, Bitrate: bitrate}); err != nil {
			return fmt.Errorf("configuring %s: %w", sess.Channel, err)
		}
	}

	results, runErr := dispatch.Run(cmd.Context(), invs, opts)

	if err := appendHistory(sess, results, runDryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record run history: %v\n", err)
	}

	return runErr
}

func appendHistory(sess *conffile.Session, results []dispatch.Result, dryRun bool) error {
	s, err := store.NewStore()
	if err != nil {
		return err
	}

	run := &store.Run{
		ID:     uuid.New().String(),
		Time:   time.Now(),
		Model:  sess.Model,
		DryRun: dryRun,
	}
	for _, r := range results {
		run.NodeIDs = append(run.NodeIDs, r.NodeID)
		run.Commands = append(run.Commands, r.Command)
		run.ExitCodes = append(run.ExitCodes, r.ExitCode)
	}
	return s.AppendRun(run)
}
