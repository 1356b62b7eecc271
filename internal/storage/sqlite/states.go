// ABOUTME: State persistence operations for SQLite
// ABOUTME: ListByCountry serves the country drill-down via the country_id index
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geoatlas/geoatlas/internal/models"
)

// StateStore handles state persistence.
type StateStore struct {
	db *DB
}

// NewStateStore creates a new StateStore.
func NewStateStore(db *DB) *StateStore {
	return &StateStore{db: db}
}

// Insert writes a batch of states inside one transaction.
func (s *StateStore) Insert(ctx context.Context, states []models.State) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inserting states: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO states (id, name, state_code, country_id, country_code) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("inserting states: %w", err)
	}
	defer stmt.Close()

	for _, st := range states {
		if _, err := stmt.ExecContext(ctx, st.ID, st.Name, st.StateCode, st.CountryID, st.CountryCode); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: state %d", ErrDuplicateKey, st.ID)
			}
			return fmt.Errorf("inserting state %d: %w", st.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored states.
func (s *StateStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM states`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting states: %w", err)
	}
	return n, nil
}

// ListByCountry returns every state whose parent is countryID.
func (s *StateStore) ListByCountry(ctx context.Context, countryID int64) ([]models.State, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, state_code, country_id, country_code FROM states WHERE country_id = ?`, countryID)
	if err != nil {
		return nil, fmt.Errorf("listing states of country %d: %w", countryID, err)
	}
	defer rows.Close()

	states := []models.State{}
	for rows.Next() {
		st, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, rows.Err()
}

// Get returns the state with the given primary key.
func (s *StateStore) Get(ctx context.Context, id int64) (*models.State, error) {
	var (
		st   models.State
		code sql.NullString
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, name, state_code, country_id, country_code FROM states WHERE id = ?`, id).
		Scan(&st.ID, &st.Name, &code, &st.CountryID, &st.CountryCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: state %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting state %d: %w", id, err)
	}
	st.StateCode = code.String
	return &st, nil
}

func scanState(rows *sql.Rows) (models.State, error) {
	var (
		st   models.State
		code sql.NullString
	)
	if err := rows.Scan(&st.ID, &st.Name, &code, &st.CountryID, &st.CountryCode); err != nil {
		return st, fmt.Errorf("scanning state: %w", err)
	}
	st.StateCode = code.String
	return st, nil
}
