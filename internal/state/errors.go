package state

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is matched by errors returned from AddContact when the
	// name is already taken
	ErrDuplicateName = errors.New("duplicate contact name")

	// ErrInvalidView is returned for values outside the View enumeration
	ErrInvalidView = errors.New("invalid view")

	// ErrUnknownCategory is returned for values outside the Category enumeration
	ErrUnknownCategory = errors.New("unknown feedback category")
)

// DuplicateNameError reports a rejected AddContact. Its message is meant to be
// shown to the user as is.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s is already in contacts.", e.Name)
}

// Is lets errors.Is(err, ErrDuplicateName) match
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}
