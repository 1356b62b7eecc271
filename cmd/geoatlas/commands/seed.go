// ABOUTME: CLI command to seed the persistent store
// ABOUTME: Fetches remote snapshots for every empty collection, in order
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoatlas/geoatlas/internal/seed"
)

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the local store from remote snapshots",
		Long: `Populate the local store from remote snapshots.

Fetches regions, subregions, countries, and states in order and stores
them locally. Collections that already hold records are skipped, so
running seed again is a fast no-op. City data is never seeded; it is
fetched per country when you browse.

Examples:
  geoatlas seed
  geoatlas seed --verbose`,
		RunE: runSeed,
	}

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	hooks := seed.Hooks{
		Progress: func(fraction float64, collection string) {
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "[%3.0f%%] %s ready\n", fraction*100, collection)
			}
		},
		Done: func(report seed.Report) {
			if quiet {
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"\nSeeded: %d regions, %d subregions, %d countries, %d states\n",
				report.Regions, report.Subregions, report.Countries, report.States)
			fmt.Fprintf(cmd.OutOrStdout(),
				"Cities (~%d) stay upstream and load per country on demand\n",
				report.CitiesApprox)
		},
	}

	if err := session.Seed(cmd.Context(), hooks); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}
	return nil
}
