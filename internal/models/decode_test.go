// ABOUTME: Tests for snapshot decoding and ingest validation
// ABOUTME: Verifies malformed records are rejected with index and reason
package models

import (
	"strings"
	"testing"
)

func TestDecodeRegions(t *testing.T) {
	data := []byte(`[{"id":1,"name":"Asia"},{"id":2,"name":"Europe"}]`)

	regions, err := DecodeRegions(data)
	if err != nil {
		t.Fatalf("DecodeRegions() error = %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("DecodeRegions() returned %d records, want 2", len(regions))
	}
	if regions[0].Name != "Asia" {
		t.Errorf("regions[0].Name = %q, want %q", regions[0].Name, "Asia")
	}
}

func TestDecodeRegions_NotAnArray(t *testing.T) {
	_, err := DecodeRegions([]byte(`{"id":1}`))
	if err == nil {
		t.Fatal("DecodeRegions() should fail on a non-array body")
	}
}

func TestDecodeRegions_InvalidRecord(t *testing.T) {
	data := []byte(`[{"id":1,"name":"Asia"},{"id":0,"name":"Nowhere"}]`)

	_, err := DecodeRegions(data)
	if err == nil {
		t.Fatal("DecodeRegions() should reject a record with id 0")
	}
	if !strings.Contains(err.Error(), "index 1") {
		t.Errorf("error should name the failing index, got: %v", err)
	}
}

func TestDecodeSubregions(t *testing.T) {
	data := []byte(`[{"id":10,"name":"Southern Asia","region_id":1}]`)

	subregions, err := DecodeSubregions(data)
	if err != nil {
		t.Fatalf("DecodeSubregions() error = %v", err)
	}
	if subregions[0].RegionID != 1 {
		t.Errorf("RegionID = %d, want 1", subregions[0].RegionID)
	}
}

func TestDecodeCountries_UnknownFieldsIgnored(t *testing.T) {
	// Real snapshots carry many extra fields; decoding keeps only what we model.
	data := []byte(`[{"id":101,"name":"India","iso2":"IN","subregion_id":10,"emoji":"🇮🇳","capital":"New Delhi","currency":"INR"}]`)

	countries, err := DecodeCountries(data)
	if err != nil {
		t.Fatalf("DecodeCountries() error = %v", err)
	}
	if countries[0].ISO2 != "IN" {
		t.Errorf("ISO2 = %q, want %q", countries[0].ISO2, "IN")
	}
}

func TestDecodeCities(t *testing.T) {
	data := []byte(`[{"id":1,"name":"Mumbai","state_id":100},{"id":2,"name":"Pune","state_id":200}]`)

	cities, err := DecodeCities(data)
	if err != nil {
		t.Fatalf("DecodeCities() error = %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("DecodeCities() returned %d records, want 2", len(cities))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  interface{ Validate() error }
		wantErr bool
	}{
		{"valid region", Region{ID: 1, Name: "Asia"}, false},
		{"region without name", Region{ID: 1}, true},
		{"region with negative id", Region{ID: -1, Name: "Asia"}, true},
		{"valid subregion", Subregion{ID: 10, Name: "Southern Asia", RegionID: 1}, false},
		{"subregion without parent", Subregion{ID: 10, Name: "Southern Asia"}, true},
		{"valid country", Country{ID: 101, Name: "India", ISO2: "IN", SubregionID: 10}, false},
		{"country with lowercase iso2", Country{ID: 101, Name: "India", ISO2: "in", SubregionID: 10}, true},
		{"country with long iso2", Country{ID: 101, Name: "India", ISO2: "IND", SubregionID: 10}, true},
		{"valid state", State{ID: 100, Name: "Maharashtra", StateCode: "MH", CountryID: 101, CountryCode: "IN"}, false},
		{"state without country", State{ID: 100, Name: "Maharashtra", CountryCode: "IN"}, true},
		{"valid city", City{ID: 1, Name: "Mumbai", StateID: 100}, false},
		{"city without state", City{ID: 1, Name: "Mumbai"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
