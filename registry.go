package recmap

import (
	"fmt"
	"sync"
)

// Options tune a Registry. All fields are optional.
type Options struct {
	Logger Logger // if nil, NopLogger is used
}

// Registry is a named descriptor table: the explicit registration step
// that stands in for runtime type introspection. Builders bound to a
// registry resolve Ref() expressions against it and register their built
// types into it.
type Registry struct {
	log Logger

	mu    sync.RWMutex
	types map[string]Descriptor
}

func NewRegistry(opts Options) *Registry {
	return &Registry{
		log:   coalesceLogger(opts.Logger),
		types: make(map[string]Descriptor),
	}
}

// Register adds a built descriptor under its name. Names are unique.
func (r *Registry) Register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := d.Name()
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("recmap: type %q already registered", name)
	}
	r.types[name] = d
	r.log.Debug("type registered", Fields{"type": name})
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Names returns all registered type names. Order is unspecified.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	return out
}
