// ABOUTME: Versioned SQLite schema for the four persistent collections
// ABOUTME: Migrations are additive and idempotent, tracked via PRAGMA user_version
package sqlite

import "fmt"

// SchemaVersion is the current schema version. It only ever increases;
// opening a store written by a newer version is refused.
const SchemaVersion = 1

type migration struct {
	version int
	stmts   string
}

// Migrations are declarative and additive: every statement is IF NOT EXISTS,
// so replaying one against a partially-initialized store is safe.
var migrations = []migration{
	{
		version: 1,
		stmts: `
-- Top-level regions
CREATE TABLE IF NOT EXISTS regions (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- Subregions, children of regions
CREATE TABLE IF NOT EXISTS subregions (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    region_id INTEGER NOT NULL
);

-- Countries, children of subregions
CREATE TABLE IF NOT EXISTS countries (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    iso2 TEXT NOT NULL,
    subregion_id INTEGER NOT NULL,
    emoji TEXT
);

-- States, children of countries
CREATE TABLE IF NOT EXISTS states (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    state_code TEXT,
    country_id INTEGER NOT NULL,
    country_code TEXT NOT NULL
);

-- Secondary lookup paths for parent-child drill-downs
CREATE INDEX IF NOT EXISTS idx_subregions_region ON subregions(region_id);
CREATE INDEX IF NOT EXISTS idx_countries_subregion ON countries(subregion_id);
CREATE INDEX IF NOT EXISTS idx_states_country ON states(country_id);
CREATE INDEX IF NOT EXISTS idx_countries_iso2 ON countries(iso2);
`,
	},
}

// migrate applies every migration newer than the stored user_version, one
// transaction per version. Existing data is never rewritten.
func (db *DB) migrate() error {
	var current int
	if err := db.conn.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("%w: reading schema version: %v", ErrStoreUnavailable, err)
	}

	if current > SchemaVersion {
		return fmt.Errorf("%w: store schema version %d is newer than supported version %d (downgrade is unsupported)",
			ErrStoreUnavailable, current, SchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("%w: starting migration %d: %v", ErrStoreUnavailable, m.version, err)
		}
		if _, err := tx.Exec(m.stmts); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: applying migration %d: %v", ErrStoreUnavailable, m.version, err)
		}
		// PRAGMA arguments cannot be bound; the version is a trusted constant.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: recording migration %d: %v", ErrStoreUnavailable, m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: committing migration %d: %v", ErrStoreUnavailable, m.version, err)
		}
	}

	return nil
}
