// Package registry manages an ordered collection of primality test
// capabilities for uniform invocation, enumeration, and benchmarking.
package registry

import (
	"github.com/erato-dev/erato/go/primality"
)

// Registry is an ordered collection of primality test instances. Iteration
// order equals registration order and is stable across calls. Entries are
// never removed, duplicate names are allowed, and the registered instances
// themselves are immutable, so a fully built Registry is safe for
// concurrent read-only use without locking.
//
// A Registry is owned by its caller: construct one explicitly and pass it
// to whatever needs it rather than sharing a process-wide instance.
type Registry struct {
	algorithms []primality.Test
}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithAlgorithm registers an algorithm during construction.
func WithAlgorithm(t primality.Test) Option {
	return func(r *Registry) {
		r.algorithms = append(r.algorithms, t)
	}
}

// New creates a Registry with the given options.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithAllAlgorithms creates a Registry pre-populated with one instance of
// each known algorithm, in the conventional order: sieve, Miller-Rabin,
// zeta. Each instance is the algorithm's default configuration.
func WithAllAlgorithms() *Registry {
	return New(
		WithAlgorithm(primality.SieveAlgorithm{}),
		WithAlgorithm(primality.MillerRabinAlgorithm{}),
		WithAlgorithm(primality.ZetaAlgorithm{}),
	)
}

// Register appends an algorithm to the registry. Registering the same
// algorithm twice yields two entries; no duplicate detection is performed.
func (r *Registry) Register(t primality.Test) {
	r.algorithms = append(r.algorithms, t)
}

// Algorithms returns the registered instances in registration order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Algorithms() []primality.Test {
	out := make([]primality.Test, len(r.algorithms))
	copy(out, r.algorithms)
	return out
}

// Names returns the display labels of all entries in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.algorithms))
	for i, t := range r.algorithms {
		names[i] = t.Name()
	}
	return names
}

// GetByName returns the first registered algorithm whose Name matches.
func (r *Registry) GetByName(name string) (primality.Test, bool) {
	for _, t := range r.algorithms {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
