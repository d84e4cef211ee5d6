package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must be
// idempotent; "duplicate column name" errors from ALTER TABLE are tolerated
// so additive migrations can re-run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL DEFAULT '',
		age            INTEGER,
		weight         REAL,
		height         REAL,
		gender         TEXT NOT NULL DEFAULT '',
		activity_level TEXT NOT NULL DEFAULT '',
		goals          TEXT NOT NULL DEFAULT '[]',
		calories       REAL,
		protein        REAL,
		fat            REAL,
		carbs          REAL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	// user_id intentionally carries no REFERENCES clause: the profile
	// deletion cascade is performed explicitly by the service layer.
	`CREATE TABLE IF NOT EXISTS notes (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		text        TEXT NOT NULL,
		ingested_at TEXT NOT NULL,
		embedding   BLOB
	)`,

	`CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id, ingested_at)`,
}

// Migrate runs all schema migrations.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
