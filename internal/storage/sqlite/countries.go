// ABOUTME: Country persistence operations for SQLite
// ABOUTME: ListBySubregion serves the subregion drill-down via the subregion_id index
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geoatlas/geoatlas/internal/models"
)

// CountryStore handles country persistence.
type CountryStore struct {
	db *DB
}

// NewCountryStore creates a new CountryStore.
func NewCountryStore(db *DB) *CountryStore {
	return &CountryStore{db: db}
}

// Insert writes a batch of countries inside one transaction.
func (s *CountryStore) Insert(ctx context.Context, countries []models.Country) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inserting countries: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO countries (id, name, iso2, subregion_id, emoji) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("inserting countries: %w", err)
	}
	defer stmt.Close()

	for _, c := range countries {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.ISO2, c.SubregionID, c.Emoji); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: country %d", ErrDuplicateKey, c.ID)
			}
			return fmt.Errorf("inserting country %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored countries.
func (s *CountryStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM countries`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting countries: %w", err)
	}
	return n, nil
}

// ListBySubregion returns every country whose parent is subregionID.
func (s *CountryStore) ListBySubregion(ctx context.Context, subregionID int64) ([]models.Country, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, iso2, subregion_id, emoji FROM countries WHERE subregion_id = ?`, subregionID)
	if err != nil {
		return nil, fmt.Errorf("listing countries of subregion %d: %w", subregionID, err)
	}
	defer rows.Close()

	countries := []models.Country{}
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// Get returns the country with the given primary key.
func (s *CountryStore) Get(ctx context.Context, id int64) (*models.Country, error) {
	var (
		c     models.Country
		emoji sql.NullString
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, name, iso2, subregion_id, emoji FROM countries WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ISO2, &c.SubregionID, &emoji)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: country %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting country %d: %w", id, err)
	}
	c.Emoji = emoji.String
	return &c, nil
}

func scanCountry(rows *sql.Rows) (models.Country, error) {
	var (
		c     models.Country
		emoji sql.NullString
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.ISO2, &c.SubregionID, &emoji); err != nil {
		return c, fmt.Errorf("scanning country: %w", err)
	}
	c.Emoji = emoji.String
	return c, nil
}
