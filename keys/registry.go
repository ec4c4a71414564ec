package keys

import (
	"maps"
	"slices"

	"github.com/signadot/sf-git-merge-driver/debug"
)

// Registry answers which extractor identifies the records of an
// element and whether their order matters. A Registry is immutable;
// With and WithOrdered return extended copies.
type Registry struct {
	extractors map[string]Extractor
	ordered    map[string]bool
}

// Default returns the registry of known metadata elements.
func Default() *Registry {
	r := &Registry{
		extractors: make(map[string]Extractor, len(table)),
		ordered:    maps.Clone(ordered),
	}
	for name, spec := range table {
		r.extractors[name] = spec
	}
	return r
}

// Empty returns a registry without any extractor.
func Empty() *Registry {
	return &Registry{
		extractors: map[string]Extractor{},
		ordered:    map[string]bool{},
	}
}

// Lookup returns the extractor registered for field.
func (r *Registry) Lookup(field string) (Extractor, bool) {
	if r == nil {
		return nil, false
	}
	x, ok := r.extractors[field]
	if debug.Keys() {
		debug.Logf("keys: lookup %s -> %t\n", field, ok)
	}
	return x, ok
}

func (r *Registry) IsOrdered(field string) bool {
	if r == nil {
		return false
	}
	return r.ordered[field]
}

func (r *Registry) With(field string, x Extractor) *Registry {
	res := r.clone()
	res.extractors[field] = x
	return res
}

func (r *Registry) WithOrdered(fields ...string) *Registry {
	res := r.clone()
	for _, f := range fields {
		res.ordered[f] = true
	}
	return res
}

// Fields lists the registered element names in sorted order.
func (r *Registry) Fields() []string {
	return slices.Sorted(maps.Keys(r.extractors))
}

func (r *Registry) clone() *Registry {
	return &Registry{
		extractors: maps.Clone(r.extractors),
		ordered:    maps.Clone(r.ordered),
	}
}
