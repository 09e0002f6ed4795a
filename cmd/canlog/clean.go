package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	cleanDryRun bool
	cleanYes    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [pattern]",
	Short: "Delete CSV files produced by the vendor logger",
	Long: `Deletes logger output files in the output directory matching the
configured glob pattern (or the given one).

Examples:
  canlog clean
  canlog clean --dry-run
  canlog clean "*_A552AC_*1000_*.csv"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "list matches without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "delete without confirmation")
}

func runClean(cmd *cobra.Command, args []string) error {
	pattern := settings.Output.Pattern
	if len(args) == 1 {
		pattern = args[0]
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}

	dir := settings.Output.Dir
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return fmt.Errorf("globbing %s in %s: %w", pattern, dir, err)
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "No files match %s in %s\n", pattern, dir)
		return nil
	}

	for _, m := range matches {
		fmt.Fprintln(os.Stdout, filepath.Join(dir, m))
	}
	if cleanDryRun {
		return nil
	}

	if !cleanYes && !confirmDelete(len(matches)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return nil
	}

	for _, m := range matches {
		path := filepath.Join(dir, m)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	fmt.Fprintf(os.Stderr, "Removed %d files\n", len(matches))
	return nil
}

// confirmDelete prompts the user to confirm deleting n files.
func confirmDelete(n int) bool {
	fmt.Fprintf(os.Stderr, "Delete %d files? [y/N] ", n)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
