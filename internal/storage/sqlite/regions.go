// ABOUTME: Region persistence operations for SQLite
// ABOUTME: Batch insert is transactional; the collection is read-only afterwards
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geoatlas/geoatlas/internal/models"
)

// RegionStore handles region persistence.
type RegionStore struct {
	db *DB
}

// NewRegionStore creates a new RegionStore.
func NewRegionStore(db *DB) *RegionStore {
	return &RegionStore{db: db}
}

// Insert writes a batch of regions inside one transaction. Partial failure
// rolls back the whole batch.
func (s *RegionStore) Insert(ctx context.Context, regions []models.Region) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inserting regions: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO regions (id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("inserting regions: %w", err)
	}
	defer stmt.Close()

	for _, r := range regions {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Name); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: region %d", ErrDuplicateKey, r.ID)
			}
			return fmt.Errorf("inserting region %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored regions.
func (s *RegionStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM regions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting regions: %w", err)
	}
	return n, nil
}

// List returns every region in insertion order.
func (s *RegionStore) List(ctx context.Context) ([]models.Region, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM regions`)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning region: %w", err)
		}
		regions = append(regions, r)
	}
	return regions, rows.Err()
}

// Get returns the region with the given primary key.
func (s *RegionStore) Get(ctx context.Context, id int64) (*models.Region, error) {
	var r models.Region
	err := s.db.QueryRow(ctx, `SELECT id, name FROM regions WHERE id = ?`, id).
		Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: region %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting region %d: %w", id, err)
	}
	return &r, nil
}
