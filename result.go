package sparqlclient

import (
	"github.com/c360/sparqlclient/results"
)

// Result is the typed outcome of a query: exactly one of the three
// shapes is populated, selected by Kind. Reading the wrong shape is a
// caller error and returns that shape's zero value, not a library
// fault.
type Result struct {
	decoded *results.Decoded
}

// Kind reports which result shape the server returned.
func (r *Result) Kind() results.Kind {
	return r.decoded.Kind
}

// Boolean returns the ASK answer. Meaningful only when Kind is
// results.KindBoolean.
func (r *Result) Boolean() bool {
	return r.decoded.Boolean
}

// Bindings returns the SELECT solution sequence, or nil when Kind is
// not results.KindBindings.
func (r *Result) Bindings() *results.Bindings {
	return r.decoded.Bindings
}

// Triples returns the lazy triple stream of a CONSTRUCT or DESCRIBE
// result, or nil when Kind is not results.KindTriples.
func (r *Result) Triples() *results.TripleStream {
	return r.decoded.Triples
}
