// ABOUTME: Unified Store wrapper composing the per-collection stores
// ABOUTME: The query façade and seeding engine only ever see this type
package sqlite

import "context"

// Store bundles one database handle with typed access to each collection.
type Store struct {
	db *DB

	Regions    *RegionStore
	Subregions *SubregionStore
	Countries  *CountryStore
	States     *StateStore
}

// NewStore wraps an open database handle.
func NewStore(db *DB) *Store {
	return &Store{
		db:         db,
		Regions:    NewRegionStore(db),
		Subregions: NewSubregionStore(db),
		Countries:  NewCountryStore(db),
		States:     NewStateStore(db),
	}
}

// OpenStore opens the database at path and wraps it.
func OpenStore(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// OpenStoreInMemory creates an in-memory store (for testing).
func OpenStoreInMemory() (*Store, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the underlying database file path.
func (s *Store) Path() string {
	return s.db.Path()
}

// CollectionCounts holds per-collection totals for the completion report.
// Cities are never materialized locally, so that figure is always an
// approximation supplied by the caller.
type CollectionCounts struct {
	Regions    int64 `json:"regions"`
	Subregions int64 `json:"subregions"`
	Countries  int64 `json:"countries"`
	States     int64 `json:"states"`
}

// Counts returns the row count of every persistent collection.
func (s *Store) Counts(ctx context.Context) (CollectionCounts, error) {
	var (
		counts CollectionCounts
		err    error
	)
	if counts.Regions, err = s.Regions.Count(ctx); err != nil {
		return counts, err
	}
	if counts.Subregions, err = s.Subregions.Count(ctx); err != nil {
		return counts, err
	}
	if counts.Countries, err = s.Countries.Count(ctx); err != nil {
		return counts, err
	}
	if counts.States, err = s.States.Count(ctx); err != nil {
		return counts, err
	}
	return counts, nil
}
