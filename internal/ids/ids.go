package ids

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces identifiers that are unique for the lifetime of a session
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs
type UUID struct{}

// NewUUID creates a new UUID generator
func NewUUID() Generator {
	return UUID{}
}

// NewID returns a fresh UUID string
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates prefix1, prefix2, ... in order
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a sequence generator whose first id is prefix+start
func NewSequence(prefix string, start int) *Sequence {
	return &Sequence{prefix: prefix, next: start}
}

// NewID returns the next id in the sequence
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

// String describes the generator for logs
func (s *Sequence) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("sequence(%s, next=%d)", s.prefix, s.next)
}
