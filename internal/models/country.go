// ABOUTME: Country record with ISO2 code used as the city overlay key
// ABOUTME: Belongs to a Subregion via subregion_id
package models

import "fmt"

// Country is a sovereign entity inside a subregion. The ISO2 code doubles as
// the key for the per-country city snapshot and the in-memory overlay.
type Country struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ISO2        string `json:"iso2"`
	SubregionID int64  `json:"subregion_id"`
	Emoji       string `json:"emoji"`
}

// Validate checks that a decoded country is usable before it reaches storage.
func (c Country) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("country id must be positive, got %d", c.ID)
	}
	if c.Name == "" {
		return fmt.Errorf("country %d has empty name", c.ID)
	}
	if !validISO2(c.ISO2) {
		return fmt.Errorf("country %d has invalid iso2 code %q", c.ID, c.ISO2)
	}
	if c.SubregionID <= 0 {
		return fmt.Errorf("country %d has invalid subregion_id %d", c.ID, c.SubregionID)
	}
	return nil
}

func validISO2(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
