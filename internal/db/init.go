package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    position INTEGER PRIMARY KEY,
    id TEXT UNIQUE NOT NULL,
    name TEXT UNIQUE NOT NULL,
    number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback (
    category TEXT PRIMARY KEY CHECK (category IN ('good', 'neutral', 'bad')),
    count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0)
);`

// Initialize creates a new database with the complete schema
func Initialize(dbPath string) error {
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists at %s", dbPath)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}
