package fixups

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// BuilderFunc creates a TextFixup.
type BuilderFunc func() driven.TextFixup

// Registry maps fix-up names to their builders.
type Registry struct {
	builders     map[string]BuilderFunc
	descriptions map[string]string
}

// NewRegistry creates an empty fix-up registry.
func NewRegistry() *Registry {
	return &Registry{
		builders:     make(map[string]BuilderFunc),
		descriptions: make(map[string]string),
	}
}

// Register adds a fix-up builder to the registry.
// Name should match the fix-up's Name() return value.
func (r *Registry) Register(name, description string, builder BuilderFunc) {
	r.builders[name] = builder
	r.descriptions[name] = description
}

// Build creates a fix-up by name.
func (r *Registry) Build(name string) (driven.TextFixup, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFixup, name)
	}
	return builder(), nil
}

// Pipeline builds a pipeline of the named fix-ups, in the order given.
func (r *Registry) Pipeline(names []string) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		f, err := r.Build(name)
		if err != nil {
			return nil, err
		}
		p.Add(f)
	}
	return p, nil
}

// Has returns true if a fix-up with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Describe returns the registered description of a fix-up.
func (r *Registry) Describe(name string) string {
	return r.descriptions[name]
}

// Names returns all registered fix-up names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
