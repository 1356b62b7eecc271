// ABOUTME: CLI command to list the cities of a state
// ABOUTME: First call per country downloads its city snapshot into memory
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCitiesCmd creates the cities command
func NewCitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities <state-id> <country-code>",
		Short: "List the cities of a state",
		Long: `List the cities of one state.

City data is not part of the seeded store. The first request for a
country downloads its city snapshot and keeps it in memory for the
rest of the process; later requests for the same country are instant.

Examples:
  geoatlas cities 4008 IN
  geoatlas cities 4008 IN --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runCities,
	}

	return cmd
}

func runCities(cmd *cobra.Command, args []string) error {
	stateID, err := parseID(args[0], "state-id")
	if err != nil {
		return err
	}
	countryCode := args[1]

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	cities, err := session.ListCities(cmd.Context(), stateID, countryCode)
	if err != nil {
		return fmt.Errorf("listing cities of state %d (%s): %w", stateID, countryCode, err)
	}

	if jsonOutput() {
		return printJSON(cmd, cities)
	}

	if len(cities) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No cities under state %d\n", stateID)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\n")
	for _, c := range cities {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d city(ies)\n", len(cities))
	}
	return nil
}
