package op

import (
	"fmt"
	"sort"
)

// Registry maps canonical operation names to their implementations.
// Binding tables are resolved against a registry before the editing
// loop starts; the registry is not mutated afterwards.
type Registry struct {
	ops map[string]Fn
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Fn)}
}

// StandardRegistry creates a registry holding the standard editing
// operations.
func StandardRegistry() *Registry {
	r := NewRegistry()
	for name, fn := range standardOps {
		r.ops[name] = fn
	}
	return r
}

// Register adds an operation under a canonical name.
func (r *Registry) Register(name string, fn Fn) error {
	if name == "" {
		return fmt.Errorf("registering operation: empty name")
	}
	if fn == nil {
		return fmt.Errorf("registering operation %q: nil function", name)
	}
	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("registering operation %q: already registered", name)
	}
	r.ops[name] = fn
	return nil
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Fn, bool) {
	fn, ok := r.ops[name]
	return fn, ok
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
