// ABOUTME: MCP tool handler implementations for the geoatlas server
// ABOUTME: Argument problems become tool errors, never protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/geoatlas/geoatlas/internal/atlas"
	"github.com/geoatlas/geoatlas/internal/seed"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	session *atlas.Session
}

// Seed handles the seed tool.
func (h *Handlers) Seed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var report seed.Report
	hooks := seed.Hooks{
		Done: func(r seed.Report) { report = r },
	}
	if err := h.session.Seed(ctx, hooks); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("seeding failed: %v", err)), nil
	}
	return jsonResult(report)
}

// ListRegions handles the list_regions tool.
func (h *Handlers) ListRegions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	regions, err := h.session.ListRegions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing regions: %v", err)), nil
	}
	return jsonResult(regions)
}

// ListSubregions handles the list_subregions tool.
func (h *Handlers) ListSubregions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	regionID, err := request.RequireInt("region_id")
	if err != nil {
		return mcp.NewToolResultError("region_id argument is required and must be a number"), nil
	}
	subregions, err := h.session.ListSubregions(ctx, int64(regionID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing subregions: %v", err)), nil
	}
	return jsonResult(subregions)
}

// ListCountries handles the list_countries tool.
func (h *Handlers) ListCountries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	subregionID, err := request.RequireInt("subregion_id")
	if err != nil {
		return mcp.NewToolResultError("subregion_id argument is required and must be a number"), nil
	}
	countries, err := h.session.ListCountries(ctx, int64(subregionID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing countries: %v", err)), nil
	}
	return jsonResult(countries)
}

// ListStates handles the list_states tool.
func (h *Handlers) ListStates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	countryID, err := request.RequireInt("country_id")
	if err != nil {
		return mcp.NewToolResultError("country_id argument is required and must be a number"), nil
	}
	states, err := h.session.ListStates(ctx, int64(countryID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing states: %v", err)), nil
	}
	return jsonResult(states)
}

// ListCities handles the list_cities tool.
func (h *Handlers) ListCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stateID, err := request.RequireInt("state_id")
	if err != nil {
		return mcp.NewToolResultError("state_id argument is required and must be a number"), nil
	}
	countryCode, err := request.RequireString("country_code")
	if err != nil {
		return mcp.NewToolResultError("country_code argument is required and must be a string"), nil
	}
	cities, err := h.session.ListCities(ctx, int64(stateID), countryCode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing cities: %v", err)), nil
	}
	return jsonResult(cities)
}

// GetDetail handles the get_detail tool.
func (h *Handlers) GetDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind argument is required and must be a string"), nil
	}
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required and must be a number"), nil
	}
	detail, err := h.session.GetDetail(ctx, kind, int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("getting %s %d: %v", kind, id, err)), nil
	}
	return jsonResult(detail)
}

// SeedStatus handles the seed_status tool.
func (h *Handlers) SeedStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := h.session.Counts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading counts: %v", err)), nil
	}
	status := struct {
		Store      string `json:"store"`
		Regions    int64  `json:"regions"`
		Subregions int64  `json:"subregions"`
		Countries  int64  `json:"countries"`
		States     int64  `json:"states"`
	}{
		Store:      h.session.StorePath(),
		Regions:    counts.Regions,
		Subregions: counts.Subregions,
		Countries:  counts.Countries,
		States:     counts.States,
	}
	return jsonResult(status)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
