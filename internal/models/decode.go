// ABOUTME: Decoders for remote snapshot JSON arrays
// ABOUTME: Every record is validated on ingest so malformed data never reaches storage
package models

import (
	"encoding/json"
	"fmt"
)

type validator interface {
	Validate() error
}

// decodeAll unmarshals a JSON array and validates every record, failing fast
// with the index of the first bad record.
func decodeAll[T validator](data []byte, what string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s snapshot: %w", what, err)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s record at index %d: %w", what, i, err)
		}
	}
	return items, nil
}

// DecodeRegions parses and validates a regions snapshot.
func DecodeRegions(data []byte) ([]Region, error) {
	return decodeAll[Region](data, "regions")
}

// DecodeSubregions parses and validates a subregions snapshot.
func DecodeSubregions(data []byte) ([]Subregion, error) {
	return decodeAll[Subregion](data, "subregions")
}

// DecodeCountries parses and validates a countries snapshot.
func DecodeCountries(data []byte) ([]Country, error) {
	return decodeAll[Country](data, "countries")
}

// DecodeStates parses and validates a states snapshot.
func DecodeStates(data []byte) ([]State, error) {
	return decodeAll[State](data, "states")
}

// DecodeCities parses and validates a per-country city snapshot.
func DecodeCities(data []byte) ([]City, error) {
	return decodeAll[City](data, "cities")
}
