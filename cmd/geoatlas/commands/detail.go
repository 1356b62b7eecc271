// ABOUTME: CLI command to show one record by kind and id
// ABOUTME: Always prints JSON since the record shape depends on kind
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var detailCountry string

// NewDetailCmd creates the detail command
func NewDetailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail <kind> <id>",
		Short: "Show one record by kind and id",
		Long: `Show one record by kind and id.

Kind is region, subregion, country, state, or city. City records live
upstream, not in the local store, so city lookups need --country to
name the ISO2 code whose city list should be loaded.

Examples:
  geoatlas detail country 101
  geoatlas detail state 4008
  geoatlas detail city 57606 --country IN`,
		Args: cobra.ExactArgs(2),
		RunE: runDetail,
	}

	cmd.Flags().StringVar(&detailCountry, "country", "", "ISO2 country code for city lookups")

	return cmd
}

func runDetail(cmd *cobra.Command, args []string) error {
	kind := args[0]
	id, err := parseID(args[1], "id")
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if kind == "city" {
		if detailCountry == "" {
			return fmt.Errorf("city lookups need --country <iso2> to locate the city list")
		}
		// Pull the country's city list into the overlay; state 0 matches
		// nothing, so this only warms the cache.
		if _, err := session.ListCities(cmd.Context(), 0, detailCountry); err != nil {
			return fmt.Errorf("loading cities of %s: %w", detailCountry, err)
		}
	}

	detail, err := session.GetDetail(cmd.Context(), kind, id)
	if err != nil {
		return fmt.Errorf("getting %s %d: %w", kind, id, err)
	}

	return printJSON(cmd, detail)
}
