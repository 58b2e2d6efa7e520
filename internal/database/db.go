package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

// createTables is idempotent; IF NOT EXISTS makes it safe to run from
// independent process instances sharing the same file.
func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY,
    lat REAL,
    lon REAL,
    city TEXT,
    address TEXT,
    updated_at INTEGER
);`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
