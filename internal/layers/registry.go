package layers

import "sync"

// Layer pairs a semantic layer name with its base stacking-order value.
type Layer struct {
	Name  string
	Value int
}

// CustomStep is the gap left above the fixed table when allocating a base
// value for a custom layer.
const CustomStep = 100

// fixed is the predefined layer table in its canonical display order.
// Immutable for the process lifetime.
var fixed = []Layer{
	{Name: "underworld", Value: -1},
	{Name: "default", Value: 0},
	{Name: "content", Value: 1},
	{Name: "dropdown", Value: 100},
	{Name: "modal", Value: 1000},
	{Name: "tooltip", Value: 1100},
	{Name: "notification", Value: 1200},
	{Name: "god-mode", Value: 9999},
}

// fixedByName is the lookup index over the fixed table.
var fixedByName = func() map[string]int {
	m := make(map[string]int, len(fixed))
	for _, l := range fixed {
		m[l.Name] = l.Value
	}
	return m
}()

// maxFixed is the highest base value in the fixed table.
var maxFixed = func() int {
	maxVal := fixed[0].Value
	for _, l := range fixed[1:] {
		if l.Value > maxVal {
			maxVal = l.Value
		}
	}
	return maxVal
}()

// Registry resolves layer names to stacking-order values.
// The zero value is not usable; construct with New.
type Registry struct {
	mu     sync.Mutex
	custom map[string]int
}

// New creates a registry with an empty custom table.
func New() *Registry {
	return &Registry{
		custom: make(map[string]int),
	}
}

// Resolve returns the value for name plus offset, allocating a custom base
// if the name is not known yet. Any string is a valid name and any int a
// valid offset; Resolve never fails. Resolution is stable: a given name maps
// to the same base value for the lifetime of the registry.
func (r *Registry) Resolve(name string, offset int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if base, ok := r.lookup(name); ok {
		return base + offset
	}
	return r.allocate(name) + offset
}

// Lookup returns the base value for name without allocating. The fixed
// table is consulted first, then the custom table.
func (r *Registry) Lookup(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(name)
}

// Allocate stores a custom base value for name and returns it. Calling
// Allocate for a name that already resolves is a no-op returning the
// existing value.
//
// The base is max(fixed table) + CustomStep regardless of previous custom
// allocations, so every custom layer shares the same base (10099) and two
// custom layers resolved with equal offsets collide in value. This matches
// the reference behavior; callers needing distinct custom tiers must pass
// distinct offsets.
func (r *Registry) Allocate(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if base, ok := r.lookup(name); ok {
		return base
	}
	return r.allocate(name)
}

// lookup is the two-tier check. Callers must hold r.mu.
func (r *Registry) lookup(name string) (int, bool) {
	if v, ok := fixedByName[name]; ok {
		return v, true
	}
	if v, ok := r.custom[name]; ok {
		return v, true
	}
	return 0, false
}

// allocate stores the custom base for a novel name. Callers must hold r.mu
// and have verified the name is not present.
func (r *Registry) allocate(name string) int {
	base := maxFixed + CustomStep
	r.custom[name] = base
	return base
}

// Layers returns the fixed table entries in their canonical order.
// Custom layers are not included.
func Layers() []Layer {
	out := make([]Layer, len(fixed))
	copy(out, fixed)
	return out
}
