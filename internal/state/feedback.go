package state

import "fmt"

// Category is a feedback option
type Category int

const (
	Good Category = iota
	Neutral
	Bad
)

// Categories lists the options in display order
var Categories = []Category{Good, Neutral, Bad}

func (c Category) String() string {
	switch c {
	case Good:
		return "good"
	case Neutral:
		return "neutral"
	case Bad:
		return "bad"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is a member of the enumeration
func (c Category) Valid() bool {
	return c >= Good && c <= Bad
}

// ParseCategory maps "good", "neutral" or "bad" to a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return Good, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Tally holds the feedback counters
type Tally struct {
	Good    int
	Neutral int
	Bad     int
}

// Count returns the counter for c, or 0 for an unknown category
func (t Tally) Count(c Category) int {
	switch c {
	case Good:
		return t.Good
	case Neutral:
		return t.Neutral
	case Bad:
		return t.Bad
	}
	return 0
}

// Total returns the number of votes cast
func (t Tally) Total() int {
	return t.Good + t.Neutral + t.Bad
}

// PositivePercentage returns the share of good votes rounded to the nearest
// integer, halves rounding up. It is 0 when no votes exist.
func (t Tally) PositivePercentage() int {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return (200*t.Good + total) / (2 * total)
}

func (t *Tally) increment(c Category) {
	switch c {
	case Good:
		t.Good++
	case Neutral:
		t.Neutral++
	case Bad:
		t.Bad++
	}
}
