package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/conffile"
	"github.com/sensorbus/canlog/internal/profile"
	"github.com/sensorbus/canlog/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved parameter profiles",
	Long: `Profiles are named copies of the conf_can.txt record, stored in the
canlog data directory. Save the current record under a name and reapply
it later without re-answering the prompts.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current parameters as a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileApplyCmd = &cobra.Command{
	Use:               "apply <name>",
	Short:             "Overwrite conf_can.txt with a saved profile",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProfileNames,
	RunE:              runProfileApply,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Short:             "Delete a saved profile",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProfileNames,
	RunE:              runProfileRemove,
}

func init() {
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileApplyCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}

func profileManager() (*profile.Manager, error) {
	s, err := store.NewStore()
	if err != nil {
		return nil, err
	}
	return profile.NewManager(s.ProfilesDir()), nil
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	pairs, err := conffile.NewStore(settings.Conf.Path).Read()
	if err != nil {
		return err
	}

	m, err := profileManager()
	if err != nil {
		return err
	}
	if err := m.Save(args[0], pairs); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Saved profile '%s' (%d parameters)\n", args[0], len(pairs))
	return nil
}

func runProfileApply(cmd *cobra.Command, args []string) error {
	m, err := profileManager()
	if err != nil {
		return err
	}

	pairs, err := m.Load(args[0])
	if err != nil {
		return err
	}

	confStore := conffile.NewStore(settings.Conf.Path)
	if err := confStore.Write(pairs); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Applied profile '%s' to %s\n", args[0], confStore.Path())
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	m, err := profileManager()
	if err != nil {
		return err
	}

	names, err := m.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "No profiles saved. Use 'canlog profile save <name>'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tBITRATE\tNODEID")
	for _, name := range names {
		pairs, err := m.Load(name)
		if err != nil {
			return err
		}
		values := make(map[string]string, len(pairs))
		for _, p := range pairs {
			values[p.Key] = p.Value
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, values["MODEL"], values["BITRATE"], values["NODEID"])
	}
	return w.Flush()
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	m, err := profileManager()
	if err != nil {
		return err
	}
	if err := m.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Removed profile '%s'\n", args[0])
	return nil
}

// completeProfileNames returns completion for saved profile names.
func completeProfileNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	m, err := profileManager()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := m.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, toComplete) {
			out = append(out, n)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
