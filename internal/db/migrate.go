package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs tolerate "duplicate column name".
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS businesses (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		category        TEXT NOT NULL DEFAULT 'gastro',
		preferred_mode  TEXT NOT NULL DEFAULT 'quick'
		                CHECK(preferred_mode IN ('quick','full')),
		precision_score INTEGER NOT NULL DEFAULT 0
		                CHECK(precision_score BETWEEN 0 AND 100),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profile_entries (
		business_id TEXT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
		path        TEXT NOT NULL,
		value       TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (business_id, path)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_profile_entries_business ON profile_entries(business_id)`,

	`CREATE TABLE IF NOT EXISTS answer_log (
		id          TEXT PRIMARY KEY,
		business_id TEXT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
		question_id TEXT NOT NULL,
		path        TEXT NOT NULL,
		value       TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answer_log_business ON answer_log(business_id)`,
}
