package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pdxmph/feedbook/internal/state"
)

// DB wraps the session database connection
type DB struct {
	conn *sql.DB
	path string
}

// Open opens an existing session database
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'feedbook init --db %s' to create it", dbPath, dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn, path: dbPath}

	if err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	slog.Debug("opened session database", "path", dbPath)
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Load reads the saved tally and contacts
func (db *DB) Load() (state.Snapshot, error) {
	var snap state.Snapshot

	contacts, err := db.listContacts()
	if err != nil {
		return snap, err
	}

	tally, err := db.loadTally()
	if err != nil {
		return snap, err
	}

	snap.Contacts = contacts
	snap.Tally = tally
	return snap, nil
}

// listContacts returns all contacts in phonebook order
func (db *DB) listContacts() ([]state.Contact, error) {
	rows, err := db.conn.Query(`SELECT id, name, number FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := []state.Contact{}
	for rows.Next() {
		var c state.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Number); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

func (db *DB) loadTally() (state.Tally, error) {
	var tally state.Tally

	rows, err := db.conn.Query(`SELECT category, count FROM feedback`)
	if err != nil {
		return tally, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return tally, fmt.Errorf("scanning feedback: %w", err)
		}

		category, err := state.ParseCategory(name)
		if err != nil {
			return tally, fmt.Errorf("reading feedback: %w", err)
		}

		switch category {
		case state.Good:
			tally.Good = count
		case state.Neutral:
			tally.Neutral = count
		case state.Bad:
			tally.Bad = count
		}
	}

	return tally, rows.Err()
}

// Save replaces the stored tally and contacts with snap
func (db *DB) Save(snap state.Snapshot) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	insert, err := tx.Prepare(`INSERT INTO contacts (position, id, name, number) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing contact insert: %w", err)
	}
	defer insert.Close()

	for i, c := range snap.Contacts {
		if _, err := insert.Exec(i, c.ID, c.Name, c.Number); err != nil {
			return fmt.Errorf("inserting contact %s: %w", c.ID, err)
		}
	}

	for _, category := range state.Categories {
		_, err := tx.Exec(`UPDATE feedback SET count = ? WHERE category = ?`,
			snap.Tally.Count(category), category.String())
		if err != nil {
			return fmt.Errorf("updating %s feedback: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}

	slog.Info("saved session", "path", db.path, "contacts", len(snap.Contacts), "votes", snap.Tally.Total())
	return nil
}
