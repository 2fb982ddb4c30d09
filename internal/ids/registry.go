package ids

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new Generator
type Factory func() Generator

// Registry maps generator names to factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("generator %s already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Create instantiates the generator registered under name
func (r *Registry) Create(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("generator %s not registered", name)
	}

	return factory(), nil
}

// List returns the registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

func init() {
	Register("uuid", NewUUID)
	// Seed contacts use id-1..id-4, so the default sequence starts after them.
	Register("sequence", func() Generator { return NewSequence("id-", 5) })
}

// Register adds a factory to the default registry
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

// Create instantiates a generator from the default registry
func Create(name string) (Generator, error) {
	return defaultRegistry.Create(name)
}

// List returns the names in the default registry
func List() []string {
	return defaultRegistry.List()
}
