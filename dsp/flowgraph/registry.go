package flowgraph

import (
	"errors"
	"fmt"
	"slices"
)

// Env is what a block factory may depend on.
type Env struct {
	SampleRate float64
	Samples    int
}

// Block transforms its input streams into one output stream. Sources take
// no inputs and produce Env.Samples samples.
type Block interface {
	NumInputs() int
	Process(in [][]complex128) ([]complex128, error)
}

// Factory builds a fresh Block for one run of a graph.
type Factory func(p Params, env Env) (Block, error)

// Registry maps block kinds to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateKind = errors.New("flowgraph: duplicate block kind")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for kind.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.New("flowgraph: empty block kind")
	}

	if factory == nil {
		return errors.New("flowgraph: nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateKind, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory for kind, or nil.
func (r *Registry) Lookup(kind string) Factory {
	return r.factories[kind]
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}

// DefaultRegistry returns a registry holding every built-in block kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)

	return r
}
