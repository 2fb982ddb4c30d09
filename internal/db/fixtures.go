package db

import (
	"fmt"

	"github.com/pdxmph/feedbook/internal/state"
)

// CreateSeededDatabase creates a session database holding the seed contacts
// and an empty tally
func CreateSeededDatabase(dbPath string) error {
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	database, err := Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening new database: %w", err)
	}
	defer database.Close()

	if err := database.Save(state.Snapshot{Contacts: state.SeedContacts()}); err != nil {
		return fmt.Errorf("adding seed contacts: %w", err)
	}

	return nil
}
