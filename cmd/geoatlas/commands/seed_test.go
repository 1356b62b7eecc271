// ABOUTME: End-to-end tests for the seed, browse, status, and reset commands
// ABOUTME: Runs the real root command against an httptest snapshot source

package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoatlas/geoatlas/internal/models"
)

// newAtlasEnv points the CLI at a throwaway store and a local snapshot
// source for the duration of one test.
func newAtlasEnv(t *testing.T) {
	t.Helper()

	payloads := map[string]string{
		"/regions/regions.json":       `[{"id":1,"name":"Asia"},{"id":2,"name":"Europe"}]`,
		"/subregions/subregions.json": `[{"id":10,"name":"Southern Asia","region_id":1}]`,
		"/countries/countries.json":   `[{"id":101,"name":"India","iso2":"IN","subregion_id":10,"emoji":"🇮🇳"}]`,
		"/states/states.json":         `[{"id":100,"name":"Maharashtra","state_code":"MH","country_id":101,"country_code":"IN"}]`,
		"/cities/IN.json":             `[{"id":1,"name":"Mumbai","state_id":100}]`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := payloads[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	t.Setenv("GEOATLAS_BASE_URL", server.URL)
	t.Setenv("GEOATLAS_DB_PATH", filepath.Join(t.TempDir(), "atlas.db"))
	t.Setenv("GEOATLAS_HTTP_TIMEOUT", "")
	t.Setenv("GEOATLAS_MAX_RETRIES", "")
}

// runCommand executes one invocation of the CLI and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestSeedCmd(t *testing.T) {
	newAtlasEnv(t)

	output, err := runCommand(t, "seed")
	if err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	for _, want := range []string{"regions", "subregions", "countries", "states", "Seeded: 2 regions"} {
		if !strings.Contains(output, want) {
			t.Errorf("seed output missing %q:\n%s", want, output)
		}
	}

	// A second run is a no-op but still succeeds.
	if output, err = runCommand(t, "seed"); err != nil {
		t.Fatalf("second seed failed: %v\n%s", err, output)
	}
}

func TestBrowseCommands(t *testing.T) {
	newAtlasEnv(t)

	if output, err := runCommand(t, "seed", "--quiet"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	output, err := runCommand(t, "regions", "--format", "json")
	if err != nil {
		t.Fatalf("regions failed: %v\n%s", err, output)
	}
	var regions []models.Region
	if err := json.Unmarshal([]byte(output), &regions); err != nil {
		t.Fatalf("regions --format json produced invalid JSON: %v\n%s", err, output)
	}
	if len(regions) != 2 {
		t.Errorf("regions = %+v, want 2 entries", regions)
	}

	output, err = runCommand(t, "subregions", "1", "--format", "json")
	if err != nil {
		t.Fatalf("subregions failed: %v\n%s", err, output)
	}
	var subregions []models.Subregion
	if err := json.Unmarshal([]byte(output), &subregions); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if len(subregions) != 1 || subregions[0].Name != "Southern Asia" {
		t.Errorf("subregions = %+v", subregions)
	}

	output, err = runCommand(t, "countries", "10")
	if err != nil {
		t.Fatalf("countries failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "India") || !strings.Contains(output, "IN") {
		t.Errorf("countries table missing India:\n%s", output)
	}

	output, err = runCommand(t, "cities", "100", "IN", "--format", "json")
	if err != nil {
		t.Fatalf("cities failed: %v\n%s", err, output)
	}
	var cities []models.City
	if err := json.Unmarshal([]byte(output), &cities); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if len(cities) != 1 || cities[0].Name != "Mumbai" {
		t.Errorf("cities = %+v", cities)
	}

	output, err = runCommand(t, "detail", "country", "101")
	if err != nil {
		t.Fatalf("detail failed: %v\n%s", err, output)
	}
	var country models.Country
	if err := json.Unmarshal([]byte(output), &country); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if country.ISO2 != "IN" {
		t.Errorf("detail country = %+v", country)
	}

	// City detail needs --country since city data lives upstream.
	if _, err := runCommand(t, "detail", "city", "1"); err == nil {
		t.Error("detail city without --country should fail")
	}
	output, err = runCommand(t, "detail", "city", "1", "--country", "IN")
	if err != nil {
		t.Fatalf("detail city failed: %v\n%s", err, output)
	}
	var city models.City
	if err := json.Unmarshal([]byte(output), &city); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if city.Name != "Mumbai" {
		t.Errorf("detail city = %+v", city)
	}
}

func TestBrowseCommands_BadID(t *testing.T) {
	newAtlasEnv(t)

	if _, err := runCommand(t, "subregions", "asia"); err == nil {
		t.Error("non-numeric id should fail")
	}
	if _, err := runCommand(t, "states", "-1"); err == nil {
		t.Error("negative id should fail")
	}
}

func TestStatusCmd(t *testing.T) {
	newAtlasEnv(t)

	output, err := runCommand(t, "status")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Store is empty") {
		t.Errorf("status of an empty store should say so:\n%s", output)
	}

	if output, err = runCommand(t, "seed", "--quiet"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	output, err = runCommand(t, "status", "--format", "json")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, output)
	}
	var status struct {
		Store   string `json:"store"`
		Regions int64  `json:"regions"`
		States  int64  `json:"states"`
	}
	if err := json.Unmarshal([]byte(output), &status); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if status.Regions != 2 || status.States != 1 || status.Store == "" {
		t.Errorf("status = %+v", status)
	}
}

func TestResetCmd(t *testing.T) {
	newAtlasEnv(t)

	if output, err := runCommand(t, "seed", "--quiet"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	// Without --yes the store must survive.
	if _, err := runCommand(t, "reset"); err == nil {
		t.Fatal("reset without --yes should fail")
	}
	output, err := runCommand(t, "status", "--format", "json")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"regions\": 2") {
		t.Errorf("store should be untouched after refused reset:\n%s", output)
	}

	if output, err = runCommand(t, "reset", "--yes"); err != nil {
		t.Fatalf("reset --yes failed: %v\n%s", err, output)
	}

	output, err = runCommand(t, "status", "--format", "json")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"regions\": 0") {
		t.Errorf("store should be empty after reset:\n%s", output)
	}
}
