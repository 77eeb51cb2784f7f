package results

import (
	"io"

	"github.com/knakk/rdf"

	"github.com/c360/sparqlclient/term"
)

// Bindings is the result of a SELECT query: a forward-only, draining
// view over the solution rows of a bindings document.
//
// Consumption is single-pass and destructive. Rows come out in the
// order the server declared them and cannot be revisited; callers
// needing random access must materialize the sequence first.
type Bindings struct {
	head *Head
	rows []map[string]term.Object
	next int
}

// newBindings wraps a decoded document head and body. The rows slice is
// owned by the Bindings from here on.
func newBindings(head *Head, body *Rows) *Bindings {
	return &Bindings{head: head, rows: body.Bindings}
}

// Variables returns the variable names of the document head, in the
// server-declared order. The answer does not change as rows are
// consumed.
func (b *Bindings) Variables() []string {
	return b.head.Vars
}

// Len returns the number of rows not yet consumed.
func (b *Bindings) Len() int {
	return len(b.rows) - b.next
}

// Next consumes and returns the next solution row, or io.EOF once the
// sequence is exhausted.
//
// A row has exactly one position per variable, in Variables() order.
// An unbound variable yields a nil entry, which is distinct from every
// bound term including the empty-string literal.
//
// A term that fails to materialize surfaces as an error on this call
// only: the offending row is still consumed, rows already delivered
// remain valid, and the caller may keep calling Next for the remaining
// rows. Stopping at the first error is conventional, not required.
func (b *Bindings) Next() ([]rdf.Term, error) {
	if b.next >= len(b.rows) {
		return nil, io.EOF
	}

	row := b.rows[b.next]
	b.next++

	out := make([]rdf.Term, len(b.head.Vars))
	for i, name := range b.head.Vars {
		obj, bound := row[name]
		if !bound {
			continue
		}
		t, err := obj.Term()
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
