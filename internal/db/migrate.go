package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// full list runs on each start.
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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		name        TEXT NOT NULL,
		weight      INTEGER NOT NULL CHECK(weight > 0),
		body_fat    INTEGER NOT NULL CHECK(body_fat BETWEEN 0 AND 100),
		muscle_mass INTEGER NOT NULL CHECK(muscle_mass BETWEEN 0 AND 100),
		age         INTEGER NOT NULL CHECK(age > 0),
		goal        TEXT NOT NULL,
		completed   TEXT NOT NULL DEFAULT '{}',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// One profile per user.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_profiles_user ON user_profiles(user_id)`,
}
