// ABOUTME: Subregion persistence operations for SQLite
// ABOUTME: ListByRegion serves the region drill-down via the region_id index
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geoatlas/geoatlas/internal/models"
)

// SubregionStore handles subregion persistence.
type SubregionStore struct {
	db *DB
}

// NewSubregionStore creates a new SubregionStore.
func NewSubregionStore(db *DB) *SubregionStore {
	return &SubregionStore{db: db}
}

// Insert writes a batch of subregions inside one transaction.
func (s *SubregionStore) Insert(ctx context.Context, subregions []models.Subregion) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inserting subregions: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO subregions (id, name, region_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("inserting subregions: %w", err)
	}
	defer stmt.Close()

	for _, sr := range subregions {
		if _, err := stmt.ExecContext(ctx, sr.ID, sr.Name, sr.RegionID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: subregion %d", ErrDuplicateKey, sr.ID)
			}
			return fmt.Errorf("inserting subregion %d: %w", sr.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored subregions.
func (s *SubregionStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM subregions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting subregions: %w", err)
	}
	return n, nil
}

// ListByRegion returns every subregion whose parent is regionID.
func (s *SubregionStore) ListByRegion(ctx context.Context, regionID int64) ([]models.Subregion, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, region_id FROM subregions WHERE region_id = ?`, regionID)
	if err != nil {
		return nil, fmt.Errorf("listing subregions of region %d: %w", regionID, err)
	}
	defer rows.Close()

	subregions := []models.Subregion{}
	for rows.Next() {
		var sr models.Subregion
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.RegionID); err != nil {
			return nil, fmt.Errorf("scanning subregion: %w", err)
		}
		subregions = append(subregions, sr)
	}
	return subregions, rows.Err()
}

// Get returns the subregion with the given primary key.
func (s *SubregionStore) Get(ctx context.Context, id int64) (*models.Subregion, error) {
	var sr models.Subregion
	err := s.db.QueryRow(ctx, `SELECT id, name, region_id FROM subregions WHERE id = ?`, id).
		Scan(&sr.ID, &sr.Name, &sr.RegionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: subregion %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting subregion %d: %w", id, err)
	}
	return &sr, nil
}
