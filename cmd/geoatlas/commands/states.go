// ABOUTME: CLI command to list the states of a country
// ABOUTME: Fourth level of the drill-down
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatesCmd creates the states command
func NewStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states <country-id>",
		Short: "List the states of a country",
		Long: `List the states or provinces of one country.

Examples:
  geoatlas states 101
  geoatlas states 101 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runStates,
	}

	return cmd
}

func runStates(cmd *cobra.Command, args []string) error {
	countryID, err := parseID(args[0], "country-id")
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	states, err := session.ListStates(cmd.Context(), countryID)
	if err != nil {
		return fmt.Errorf("listing states of country %d: %w", countryID, err)
	}

	if jsonOutput() {
		return printJSON(cmd, states)
	}

	if len(states) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No states under country %d\n", countryID)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tCODE\tCOUNTRY\n")
	for _, s := range states {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.StateCode, s.CountryCode)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d state(s)\n", len(states))
	}
	return nil
}
