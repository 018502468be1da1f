// Package triangles provides options and error definitions for triangle
// census over a core.Graph.
package triangles

import (
	"errors"
	"strings"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("triangles: graph is nil")

// Triangle is an unordered connected triple in canonical form:
// A < B < C lexicographically. Two triangles describe the same triple
// iff their tuples are equal, so Triangle works directly as a map key.
type Triangle struct {
	A, B, C string
}

// Members returns the three node IDs in canonical order.
func (t Triangle) Members() [3]string { return [3]string{t.A, t.B, t.C} }

// String renders the triangle as a comma-joined tuple, e.g. "co,de,ta".
func (t Triangle) String() string { return t.A + "," + t.B + "," + t.C }

// Predicate decides whether a triangle participates in the census.
type Predicate func(Triangle) bool

// Option configures the census via functional arguments.
type Option func(*CountOptions)

// CountOptions holds the parameters of a census run.
type CountOptions struct {
	// Match filters triangles; only matching ones are counted/emitted.
	Match Predicate
}

// DefaultOptions returns CountOptions matching every triangle.
func DefaultOptions() CountOptions {
	return CountOptions{
		Match: func(Triangle) bool { return true },
	}
}

// WithPredicate installs a custom triangle filter.
func WithPredicate(p Predicate) Option {
	return func(o *CountOptions) {
		if p != nil {
			o.Match = p
		}
	}
}

// WithAnyPrefix matches triangles in which at least one member's ID
// starts with prefix. The empty prefix matches everything.
func WithAnyPrefix(prefix string) Option {
	return WithPredicate(func(t Triangle) bool {
		return strings.HasPrefix(t.A, prefix) ||
			strings.HasPrefix(t.B, prefix) ||
			strings.HasPrefix(t.C, prefix)
	})
}
