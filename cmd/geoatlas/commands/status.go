// ABOUTME: CLI command to report seeding state of the local store
// ABOUTME: Shows per-collection record counts and the store location
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show store location and per-collection counts",
		Long: `Show the local store location and per-collection record counts.

All-zero counts mean the store has not been seeded yet.

Examples:
  geoatlas status
  geoatlas status --format json`,
		RunE: runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	counts, err := session.Counts(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading counts: %w", err)
	}

	if jsonOutput() {
		return printJSON(cmd, struct {
			Store      string `json:"store"`
			Regions    int64  `json:"regions"`
			Subregions int64  `json:"subregions"`
			Countries  int64  `json:"countries"`
			States     int64  `json:"states"`
		}{session.StorePath(), counts.Regions, counts.Subregions, counts.Countries, counts.States})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Store: %s\n\n", session.StorePath())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "COLLECTION\tRECORDS\n")
	fmt.Fprintf(w, "regions\t%d\n", counts.Regions)
	fmt.Fprintf(w, "subregions\t%d\n", counts.Subregions)
	fmt.Fprintf(w, "countries\t%d\n", counts.Countries)
	fmt.Fprintf(w, "states\t%d\n", counts.States)
	w.Flush()

	if counts.Regions == 0 && !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "\nStore is empty; run \"geoatlas seed\"")
	}
	return nil
}
