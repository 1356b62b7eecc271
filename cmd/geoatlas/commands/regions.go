// ABOUTME: CLI command to list top-level regions
// ABOUTME: Entry point of the drill-down, resets the session selection
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewRegionsCmd creates the regions command
func NewRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List every top-level region",
		Long: `List every top-level region of the world hierarchy.

Reads from the local store; run "geoatlas seed" first.

Examples:
  geoatlas regions
  geoatlas regions --format json`,
		RunE: runRegions,
	}

	return cmd
}

func runRegions(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	regions, err := session.ListRegions(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing regions: %w", err)
	}

	if jsonOutput() {
		return printJSON(cmd, regions)
	}

	if len(regions) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No regions found; run \"geoatlas seed\" first")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\n")
	for _, r := range regions {
		fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d region(s)\n", len(regions))
	}
	return nil
}
