package sparqlclient

import (
	"strings"

	"github.com/c360/sparqlclient/errors"
)

// Query is a SPARQL query prepared for a Client.
//
// The prepared form is identical to the source text: Prepare only
// checks that text was supplied, performs no server round trip, and
// yields no caching or reuse benefit. Callers should not hold prepared
// queries expecting them to execute faster.
type Query struct {
	text string
}

// Prepare wraps a literal query string as an opaque query handle. It
// fails only when no text was supplied.
func Prepare(text string) (Query, error) {
	if strings.TrimSpace(text) == "" {
		return Query{}, errors.WrapInvalid(errors.ErrEmptyQuery, "Query", "Prepare", "text validation")
	}
	return Query{text: text}, nil
}

// Text returns the query source text, unchanged.
func (q Query) Text() string {
	return q.text
}
