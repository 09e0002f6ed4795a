// Package dispatch assembles the vendor logger command line from a loaded
// session and runs it once per requested node ID.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sensorbus/canlog/internal/conffile"
	"github.com/sensorbus/canlog/internal/params"
)

// Options configure how the logger is launched.
type Options struct {
	Python    string // interpreter, e.g. "python3"
	ScriptDir string // directory holding the vendor logger scripts
	DryRun    bool   // print the command lines instead of executing

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Invocation is one planned logger launch.
type Invocation struct {
	NodeID string
	Path   string   // interpreter path
	Args   []string // argv after the interpreter
}

// Result records the outcome of one invocation.
type Result struct {
	NodeID   string
	Command  string
	ExitCode int
}

// BuildArgs assembles the logger argv for one node ID. Values substitute
// into fixed flag positions; empty optional tokens are omitted. Nothing is
// validated here: malformed values ride through to the logger.
func BuildArgs(sess *conffile.Session, script, nodeID string) []string {
	args := []string{
		script,
		"-i", sess.Interface,
		"-c", sess.Channel,
		"-b", sess.Bitrate,
		"--can_id", nodeID,
		"-m", sess.Sample,
	}
	// SYNC holds either --sync_hz or --drate; both take the rate value.
	if sess.Sync != "" {
		args = append(args, sess.Sync, sess.Drate)
	}
	if sess.Filter != "" {
		args = append(args, "--filter", sess.Filter)
	}
	for _, tok := range []string{sess.CSV, sess.Tempc, sess.Noscale, sess.Savecfg} {
		if tok != "" {
			args = append(args, tok)
		}
	}
	return args
}

// Plan resolves the interpreter and script and expands the node ID list
// into sequential invocations. Zero node IDs means a single invocation
// with the session's stored node ID.
func Plan(sess *conffile.Session, nodeIDs []string, opts Options) ([]Invocation, error) {
	script, ok := params.ScriptFor(sess.Model)
	if !ok {
		return nil, fmt.Errorf("unknown IMU model %q", sess.Model)
	}
	scriptPath := filepath.Join(opts.ScriptDir, script)

	python := opts.Python
	if !opts.DryRun {
		path, err := exec.LookPath(python)
		if err != nil {
			return nil, fmt.Errorf("%s not found in PATH: %w", python, err)
		}
		python = path
	}

	if len(nodeIDs) == 0 {
		nodeIDs = []string{sess.NodeID}
	}

	invs := make([]Invocation, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		invs = append(invs, Invocation{
			NodeID: id,
			Path:   python,
			Args:   BuildArgs(sess, scriptPath, id),
		})
	}
	return invs, nil
}

// Run executes the planned invocations one at a time, each blocking until
// the child exits. Child stdio is wired straight through; exit codes are
// recorded but not interpreted, and a failing node does not stop the ones
// after it.
func Run(ctx context.Context, invs []Invocation, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(invs))
	var lastErr error

	for _, inv := range invs {
		cmdline := inv.Path + " " + strings.Join(inv.Args, " ")
		if opts.DryRun {
			fmt.Fprintln(opts.Stdout, cmdline)
			results = append(results, Result{NodeID: inv.NodeID, Command: cmdline})
			continue
		}

		slog.Info("starting logger", "node_id", inv.NodeID, "command", cmdline)

		c := exec.CommandContext(ctx, inv.Path, inv.Args...)
		c.Stdin = opts.Stdin
		c.Stdout = opts.Stdout
		c.Stderr = opts.Stderr

		res := Result{NodeID: inv.NodeID, Command: cmdline}
		if err := c.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				res.ExitCode = exitErr.ExitCode()
				lastErr = fmt.Errorf("logger for node %s exited with code %d", inv.NodeID, res.ExitCode)
			} else {
				res.ExitCode = -1
				lastErr = fmt.Errorf("starting logger for node %s: %w", inv.NodeID, err)
			}
			slog.Error("logger failed", "node_id", inv.NodeID, "exit_code", res.ExitCode)
		}
		results = append(results, res)
	}
	return results, lastErr
}
