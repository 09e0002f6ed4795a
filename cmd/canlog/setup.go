package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/conffile"
	"github.com/sensorbus/canlog/internal/params"
	"github.com/sensorbus/canlog/internal/prompt"
)

var setupDefaults bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Collect logging parameters and write conf_can.txt",
	Long: `Prompts for the CAN logging parameters (adapter, bitrate, node ID,
sample count, data rate, filter, output flags), applying a documented
default on every empty answer, and writes the result to conf_can.txt.

The file is rewritten wholesale on every run. Answers are not validated
beyond emptiness: a malformed bitrate is stored and forwarded as typed.

Examples:
  canlog setup
  canlog setup --defaults
  canlog setup --file /data/imu/conf_can.txt`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupDefaults, "defaults", false, "accept every default without prompting")
	setupCmd.Flags().String("file", "", "configuration file to write (default from settings)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = settings.Conf.Path
	}

	var pairs []conffile.Pair
	var err error
	if setupDefaults {
		pairs = defaultPairs()
	} else {
		if !prompt.StdinIsTerminal() {
			return fmt.Errorf("stdin is not a terminal; use --defaults for non-interactive setup")
		}
		pairs, err = collectPairs(os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
	}

	store := conffile.NewStore(path)
	if err := store.Write(pairs); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d parameters to %s\n", len(pairs), store.Path())
	return nil
}

// collectPairs walks the prompt sequence and resolves every answer to its
// stored value. Filter choices are listed once before the filter prompt.
func collectPairs(in io.Reader, out io.Writer) ([]conffile.Pair, error) {
	p := prompt.New(in, out)

	pairs := make([]conffile.Pair, 0, len(params.Sequence()))
	for _, param := range params.Sequence() {
		if param.Key == params.KeyFilter {
			fmt.Fprintf(out, "Filters: %s\n", strings.Join(params.FilterChoices, " "))
		}
		answer, err := p.Ask(param.Label, param.Default)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, conffile.Pair{Key: param.Key, Value: params.Resolve(param, answer)})
	}
	return pairs, nil
}

// defaultPairs resolves every parameter as if each prompt got an empty answer.
func defaultPairs() []conffile.Pair {
	seq := params.Sequence()
	pairs := make([]conffile.Pair, 0, len(seq))
	for _, param := range seq {
		pairs = append(pairs, conffile.Pair{Key: param.Key, Value: params.Resolve(param, "")})
	}
	return pairs
}
