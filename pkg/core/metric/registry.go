package metric

import (
	"fmt"
	"sync"
)

// Registry holds the immutable set of metric definitions. It preserves
// registration order so batch reports come out in a stable sequence.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition. Duplicate ids and malformed definitions are
// rejected so a broken catalog fails fast at startup instead of producing
// wrong classifications later.
func (r *Registry) Register(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("metric %s already registered", def.ID)
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Get looks up a definition by id.
func (r *Registry) Get(id string) (*Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// IDs returns every registered metric id in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many metrics are registered.
func (r *Registry) Len() int {
	return len(r.order)
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry populated with the built-in
// catalog. Built once, never mutated.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, def := range catalog() {
			if err := r.Register(def); err != nil {
				// The catalog is static data; a registration failure is a
				// programming error, not a runtime condition.
				panic(err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
