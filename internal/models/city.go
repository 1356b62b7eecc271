// ABOUTME: City record, held only by the in-memory per-country overlay
// ABOUTME: Never written to the persistent store
package models

import "fmt"

// City belongs to a State. Cities exist only inside the country-scoped
// overlay; the persistent store never sees them.
type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StateID int64  `json:"state_id"`
}

// Validate checks that a decoded city is usable before it reaches the overlay.
func (c City) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("city id must be positive, got %d", c.ID)
	}
	if c.Name == "" {
		return fmt.Errorf("city %d has empty name", c.ID)
	}
	if c.StateID <= 0 {
		return fmt.Errorf("city %d has invalid state_id %d", c.ID, c.StateID)
	}
	return nil
}
