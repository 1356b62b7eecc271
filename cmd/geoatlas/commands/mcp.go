// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to browse the atlas via stdio
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/geoatlas/geoatlas/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs GeoAtlas as an MCP (Model Context Protocol) server, exposing the
seeding and drill-down operations as tools over stdio. The session
lives for the whole server process, so city lists fetched for one tool
call stay cached for the next.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by an MCP client)
  geoatlas mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "geoatlas": {
  #       "command": "geoatlas",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"GeoAtlas",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, session)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		slog.Info("MCP server starting on stdio", "store", session.StorePath())
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if err := session.Close(); err != nil {
			slog.Warn("closing store", "error", err)
		}
		if !quiet {
			slog.Info("shutdown complete")
		}

	case err := <-serverErr:
		_ = session.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
