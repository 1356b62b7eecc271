// ABOUTME: CLI command to destroy and recreate the local store
// ABOUTME: Refuses to run without the --yes flag
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

// NewResetCmd creates the reset command
func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the local store and start over",
		Long: `Delete the local store and recreate it empty.

The next seed run downloads everything again. This is the recovery
path for a corrupt or stale store.

Examples:
  geoatlas reset --yes`,
		RunE: runReset,
	}

	cmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deletion of the local store")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if !resetYes {
		return fmt.Errorf("refusing to delete %s; re-run with --yes to confirm", session.StorePath())
	}

	if err := session.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Store reset: %s\n", session.StorePath())
		fmt.Fprintln(cmd.OutOrStdout(), "Run \"geoatlas seed\" to repopulate it")
	}
	return nil
}
