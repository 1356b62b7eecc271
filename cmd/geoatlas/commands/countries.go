// ABOUTME: CLI command to list the countries of a subregion
// ABOUTME: Shows the ISO2 code needed later by the cities command
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCountriesCmd creates the countries command
func NewCountriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries <subregion-id>",
		Short: "List the countries of a subregion",
		Long: `List the countries of one subregion.

The ISO2 column is the code the cities command takes as its second
argument.

Examples:
  geoatlas countries 14
  geoatlas countries 14 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runCountries,
	}

	return cmd
}

func runCountries(cmd *cobra.Command, args []string) error {
	subregionID, err := parseID(args[0], "subregion-id")
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	countries, err := session.ListCountries(cmd.Context(), subregionID)
	if err != nil {
		return fmt.Errorf("listing countries of subregion %d: %w", subregionID, err)
	}

	if jsonOutput() {
		return printJSON(cmd, countries)
	}

	if len(countries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No countries under subregion %d\n", subregionID)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tISO2\tFLAG\n")
	for _, c := range countries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.ISO2, c.Emoji)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d country(ies)\n", len(countries))
	}
	return nil
}
