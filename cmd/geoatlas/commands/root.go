// ABOUTME: Root CLI command with global flags and logging setup
// ABOUTME: Wires every subcommand and configures slog for the process
package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████╗ ███████╗ ██████╗  █████╗ ████████╗██╗      █████╗ ███████╗
██╔════╝ ██╔════╝██╔═══██╗██╔══██╗╚══██╔══╝██║     ██╔══██╗██╔════╝
██║  ███╗█████╗  ██║   ██║███████║   ██║   ██║     ███████║███████╗
██║   ██║██╔══╝  ██║   ██║██╔══██║   ██║   ██║     ██╔══██║╚════██║
╚██████╔╝███████╗╚██████╔╝██║  ██║   ██║   ██║     ██║  ██║███████║
 ╚═════╝ ╚══════╝ ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝     ╚═╝  ╚═╝╚══════╝`

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geoatlas",
		Short: "Browse the world hierarchy from a local snapshot store",
		Long: banner + `

GeoAtlas keeps a local copy of the region/subregion/country/state
hierarchy, seeded once from remote JSON snapshots. City lists are
fetched per country on demand and held in memory only.

Run "geoatlas seed" first, then drill down:

  geoatlas regions
  geoatlas subregions 3
  geoatlas countries 14
  geoatlas states 101
  geoatlas cities 4008 IN`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors, suppress summaries")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, or json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewSeedCmd(),
		NewRegionsCmd(),
		NewSubregionsCmd(),
		NewCountriesCmd(),
		NewStatesCmd(),
		NewCitiesCmd(),
		NewDetailCmd(),
		NewStatusCmd(),
		NewResetCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}
