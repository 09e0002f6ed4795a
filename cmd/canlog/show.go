package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/conffile"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored logging parameters",
	Long: `Prints the current conf_can.txt contents as KEY=VALUE lines,
in file order.

Examples:
  canlog show`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store := conffile.NewStore(settings.Conf.Path)

	pairs, err := store.Read()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# %s\n", store.Path())
	for _, p := range pairs {
		fmt.Fprintf(os.Stdout, "%s=%s\n", p.Key, p.Value)
	}
	return nil
}
