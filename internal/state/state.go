// Package state holds the application state shared by both panels: the active
// view, the feedback tally, the phonebook and its filter. It is owned by a
// single event loop and performs no locking.
package state

import (
	"fmt"
	"strings"

	"github.com/pdxmph/feedbook/internal/ids"
)

// State is the application state controller
type State struct {
	ids      ids.Generator
	view     View
	tally    Tally
	contacts []Contact
	filter   string
}

// Snapshot is the part of the state that outlives a session
type Snapshot struct {
	Tally    Tally
	Contacts []Contact
}

// New creates a state on the feedback view with a zero tally and the seed
// contacts
func New(gen ids.Generator) *State {
	return Restore(gen, Snapshot{Contacts: SeedContacts()})
}

// Restore creates a state from a saved snapshot
func Restore(gen ids.Generator, snap Snapshot) *State {
	contacts := make([]Contact, len(snap.Contacts))
	copy(contacts, snap.Contacts)

	return &State{
		ids:      gen,
		view:     ViewFeedback,
		tally:    snap.Tally,
		contacts: contacts,
	}
}

// Snapshot returns a copy of the durable state
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tally:    s.tally,
		Contacts: s.Contacts(),
	}
}

// View returns the active view
func (s *State) View() View {
	return s.view
}

// SwitchView makes v the active view
func (s *State) SwitchView(v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidView, int(v))
	}
	s.view = v
	return nil
}

// Tally returns the current counters
func (s *State) Tally() Tally {
	return s.tally
}

// LeaveFeedback adds one vote to c
func (s *State) LeaveFeedback(c Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	s.tally.increment(c)
	return nil
}

// Total returns the number of votes cast
func (s *State) Total() int {
	return s.tally.Total()
}

// PositivePercentage returns the rounded share of good votes
func (s *State) PositivePercentage() int {
	return s.tally.PositivePercentage()
}

// Contacts returns a copy of the phonebook in insertion order
func (s *State) Contacts() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// AddContact appends a new contact. A name that already exists is rejected
// with a *DuplicateNameError and the phonebook is left unchanged.
func (s *State) AddContact(name, number string) (Contact, error) {
	for _, c := range s.contacts {
		if c.Name == name {
			return Contact{}, &DuplicateNameError{Name: name}
		}
	}

	contact := Contact{
		ID:     s.freshID(),
		Name:   name,
		Number: number,
	}
	s.contacts = append(s.contacts, contact)
	return contact, nil
}

// freshID draws ids until one is not in use
func (s *State) freshID() string {
	for {
		id := s.ids.NewID()
		if !s.hasID(id) {
			return id
		}
	}
}

func (s *State) hasID(id string) bool {
	for _, c := range s.contacts {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DeleteContact removes the contact with the given id and reports whether
// one was removed. Unknown ids are ignored.
func (s *State) DeleteContact(id string) bool {
	for i, c := range s.contacts {
		if c.ID != id {
			continue
		}
		remaining := make([]Contact, 0, len(s.contacts)-1)
		remaining = append(remaining, s.contacts[:i]...)
		remaining = append(remaining, s.contacts[i+1:]...)
		s.contacts = remaining
		return true
	}
	return false
}

// Filter returns the filter text as it was set
func (s *State) Filter() string {
	return s.filter
}

// SetFilter replaces the filter text
func (s *State) SetFilter(text string) {
	s.filter = text
}

// VisibleContacts returns the contacts whose name contains the filter,
// ignoring case, in phonebook order
func (s *State) VisibleContacts() []Contact {
	normalized := strings.ToLower(s.filter)

	visible := make([]Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.matches(normalized) {
			visible = append(visible, c)
		}
	}
	return visible
}
