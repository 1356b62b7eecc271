// ABOUTME: Subregion is the second level of the hierarchy, child of a Region
// ABOUTME: Carries the region_id used by the secondary lookup path
package models

import "fmt"

// Subregion is a sub-continental grouping (e.g. "Southern Asia").
type Subregion struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RegionID int64  `json:"region_id"`
}

// Validate checks that a decoded subregion is usable before it reaches storage.
func (s Subregion) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("subregion id must be positive, got %d", s.ID)
	}
	if s.Name == "" {
		return fmt.Errorf("subregion %d has empty name", s.ID)
	}
	if s.RegionID <= 0 {
		return fmt.Errorf("subregion %d has invalid region_id %d", s.ID, s.RegionID)
	}
	return nil
}
