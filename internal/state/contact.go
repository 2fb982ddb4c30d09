package state

import "strings"

// Contact is a phonebook entry
type Contact struct {
	ID     string
	Name   string
	Number string
}

// SeedContacts returns the contacts every new session starts with
func SeedContacts() []Contact {
	return []Contact{
		{ID: "id-1", Name: "Rosie Simpson", Number: "459-12-56"},
		{ID: "id-2", Name: "Hermione Kline", Number: "443-89-12"},
		{ID: "id-3", Name: "Eden Clements", Number: "645-17-79"},
		{ID: "id-4", Name: "Annie Copeland", Number: "227-91-26"},
	}
}

// matches reports whether the contact name contains the already lowercased
// filter
func (c Contact) matches(normalized string) bool {
	return strings.Contains(strings.ToLower(c.Name), normalized)
}
