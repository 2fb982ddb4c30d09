package db

import (
	"fmt"
	"log/slog"

	"github.com/pdxmph/feedbook/internal/state"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	if err := db.runFeedbackRowsMigration(); err != nil {
		return err
	}

	return nil
}

// runFeedbackRowsMigration makes sure every category has a counter row so that
// Save can update in place
func (db *DB) runFeedbackRowsMigration() error {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking feedback rows: %w", err)
	}

	if count >= len(state.Categories) {
		return nil
	}

	slog.Info("running migration: adding feedback counters", "existing", count)

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, category := range state.Categories {
		_, err := tx.Exec(`INSERT OR IGNORE INTO feedback (category, count) VALUES (?, 0)`, category.String())
		if err != nil {
			return fmt.Errorf("adding %s counter: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}

	slog.Info("migration completed successfully")
	return nil
}
