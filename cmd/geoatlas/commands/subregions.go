// ABOUTME: CLI command to list the subregions of a region
// ABOUTME: Second level of the drill-down
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSubregionsCmd creates the subregions command
func NewSubregionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subregions <region-id>",
		Short: "List the subregions of a region",
		Long: `List the subregions of one region.

Examples:
  geoatlas subregions 3
  geoatlas subregions 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSubregions,
	}

	return cmd
}

func runSubregions(cmd *cobra.Command, args []string) error {
	regionID, err := parseID(args[0], "region-id")
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	subregions, err := session.ListSubregions(cmd.Context(), regionID)
	if err != nil {
		return fmt.Errorf("listing subregions of region %d: %w", regionID, err)
	}

	if jsonOutput() {
		return printJSON(cmd, subregions)
	}

	if len(subregions) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No subregions under region %d\n", regionID)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\n")
	for _, sr := range subregions {
		fmt.Fprintf(w, "%d\t%s\n", sr.ID, sr.Name)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d subregion(s)\n", len(subregions))
	}
	return nil
}
