// ABOUTME: Region is the top level of the geographic hierarchy
// ABOUTME: Seeded once into the regions collection, immutable afterwards
package models

import "fmt"

// Region is a continental-scale grouping (e.g. "Asia", "Europe").
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate checks that a decoded region is usable before it reaches storage.
func (r Region) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("region id must be positive, got %d", r.ID)
	}
	if r.Name == "" {
		return fmt.Errorf("region %d has empty name", r.ID)
	}
	return nil
}
