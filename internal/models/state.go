// ABOUTME: State (province) record, child of a Country
// ABOUTME: country_code is carried so drill-downs can key the city overlay
package models

import "fmt"

// State is a first-level administrative division of a country.
type State struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StateCode   string `json:"state_code"`
	CountryID   int64  `json:"country_id"`
	CountryCode string `json:"country_code"`
}

// Validate checks that a decoded state is usable before it reaches storage.
func (s State) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("state id must be positive, got %d", s.ID)
	}
	if s.Name == "" {
		return fmt.Errorf("state %d has empty name", s.ID)
	}
	if s.CountryID <= 0 {
		return fmt.Errorf("state %d has invalid country_id %d", s.ID, s.CountryID)
	}
	if !validISO2(s.CountryCode) {
		return fmt.Errorf("state %d has invalid country_code %q", s.ID, s.CountryCode)
	}
	return nil
}
