// ABOUTME: MCP tool definitions and registration for the geoatlas server
// ABOUTME: Exposes the query façade as tools for LLM agents over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/geoatlas/geoatlas/internal/atlas"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, session *atlas.Session) *Handlers {
	handlers := &Handlers{session: session}

	server.AddTool(mcp.Tool{
		Name:        "seed",
		Description: "Populate the local store from the remote snapshot source. Collections that are already seeded are skipped; running this twice is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.Seed)

	server.AddTool(mcp.Tool{
		Name:        "list_regions",
		Description: "List every top-level region of the world hierarchy.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListRegions)

	server.AddTool(mcp.Tool{
		Name:        "list_subregions",
		Description: "List the subregions of one region.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"region_id": map[string]interface{}{
					"type":        "number",
					"description": "Parent region id",
				},
			},
			Required: []string{"region_id"},
		},
	}, handlers.ListSubregions)

	server.AddTool(mcp.Tool{
		Name:        "list_countries",
		Description: "List the countries of one subregion.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"subregion_id": map[string]interface{}{
					"type":        "number",
					"description": "Parent subregion id",
				},
			},
			Required: []string{"subregion_id"},
		},
	}, handlers.ListCountries)

	server.AddTool(mcp.Tool{
		Name:        "list_states",
		Description: "List the states or provinces of one country.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"country_id": map[string]interface{}{
					"type":        "number",
					"description": "Parent country id",
				},
			},
			Required: []string{"country_id"},
		},
	}, handlers.ListStates)

	server.AddTool(mcp.Tool{
		Name:        "list_cities",
		Description: "List the cities of one state. The first call for a country downloads its city list; later calls are served from memory.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"state_id": map[string]interface{}{
					"type":        "number",
					"description": "Parent state id",
				},
				"country_code": map[string]interface{}{
					"type":        "string",
					"description": "ISO2 code of the state's country (e.g. \"IN\")",
				},
			},
			Required: []string{"state_id", "country_code"},
		},
	}, handlers.ListCities)

	server.AddTool(mcp.Tool{
		Name:        "get_detail",
		Description: "Fetch one record by kind and id. Kind is region, subregion, country, state, or city. City lookups only cover countries browsed earlier in this session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"kind": map[string]interface{}{
					"type":        "string",
					"description": "Record kind: region, subregion, country, state, or city",
				},
				"id": map[string]interface{}{
					"type":        "number",
					"description": "Record id",
				},
			},
			Required: []string{"kind", "id"},
		},
	}, handlers.GetDetail)

	server.AddTool(mcp.Tool{
		Name:        "seed_status",
		Description: "Report per-collection record counts of the local store.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SeedStatus)

	return handlers
}
