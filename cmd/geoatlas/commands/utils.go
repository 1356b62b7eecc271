// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Session construction, id parsing, and output helpers
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geoatlas/geoatlas/internal/atlas"
	"github.com/geoatlas/geoatlas/internal/config"
)

// openSession builds a browsing session from the environment. Every command
// that touches the store or the network goes through here.
func openSession() (*atlas.Session, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	session, err := atlas.New(cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return session, nil
}

// parseID parses a positional numeric id argument.
func parseID(arg, name string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive numeric id, got %q", name, arg)
	}
	return id, nil
}

// jsonOutput reports whether the user asked for JSON.
func jsonOutput() bool {
	return outputFormat == "json"
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}
