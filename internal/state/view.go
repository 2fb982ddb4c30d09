package state

import "fmt"

// View is one of the two mutually exclusive panels
type View int

const (
	ViewFeedback View = iota
	ViewContacts
)

// Views lists every view in navigation order
var Views = []View{ViewFeedback, ViewContacts}

func (v View) String() string {
	switch v {
	case ViewFeedback:
		return "feedback"
	case ViewContacts:
		return "contacts"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Valid reports whether v is a member of the enumeration
func (v View) Valid() bool {
	return v == ViewFeedback || v == ViewContacts
}

// ParseView maps "feedback" or "contacts" to a View
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if v.String() == s {
			return v, nil
		}
	}
	return ViewFeedback, fmt.Errorf("%w: %q", ErrInvalidView, s)
}
