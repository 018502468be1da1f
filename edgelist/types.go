// Package edgelist provides options and error definitions for edge-record
// parsing into a core.Graph.
package edgelist

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrNilReader is returned if a nil io.Reader is passed to Parse.
	ErrNilReader = errors.New("edgelist: reader is nil")

	// ErrMalformedEdge indicates a line that does not split into exactly
	// two non-empty endpoints joined by the separator.
	ErrMalformedEdge = errors.New("edgelist: malformed edge record")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")
)

// Option configures parsing via functional arguments. An invalid Option
// (e.g. an empty separator) is recorded internally and surfaced as
// ErrOptionViolation when Parse is invoked.
type Option func(*ParseOptions)

// ParseOptions holds parameters customizing edge-record parsing.
type ParseOptions struct {
	// Separator joins the two endpoints within a record. Default "-".
	Separator string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a ParseOptions with the "-" separator.
func DefaultOptions() ParseOptions {
	return ParseOptions{
		Separator: "-",
		err:       nil,
	}
}

// WithSeparator sets the endpoint separator. An empty separator is
// invalid and surfaces ErrOptionViolation.
func WithSeparator(sep string) Option {
	return func(o *ParseOptions) {
		if sep == "" {
			o.err = fmt.Errorf("%w: separator must be non-empty", ErrOptionViolation)
			return
		}
		o.Separator = sep
	}
}
