// Package clique provides options, error definitions, and the Result type
// for maximum-clique search over a core.Graph.
package clique

import (
	"errors"
	"strings"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("clique: graph is nil")

// Result holds one maximum clique.
//
// Members is sorted lexicographically ascending. The sort is
// presentation-only: it fixes the output form, not which clique the
// search selects.
type Result struct {
	Members []string
}

// Size returns the number of clique members.
func (r Result) Size() int { return len(r.Members) }

// String renders the clique as a comma-joined list with no surrounding
// whitespace, e.g. "co,de,ka,ta". Empty for an empty result.
func (r Result) String() string { return strings.Join(r.Members, ",") }

// Option configures the search via functional arguments.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks customizing the search.
type SearchOptions struct {
	// OnImprove is called each time the search records a strictly larger
	// clique, with the new incumbent's members sorted lex asc. The slice
	// is a fresh copy and safe to retain.
	OnImprove func(members []string)
}

// DefaultOptions returns SearchOptions with a no-op improvement hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		OnImprove: func([]string) {},
	}
}

// WithOnImprove registers a callback fired on every incumbent improvement.
func WithOnImprove(fn func(members []string)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
