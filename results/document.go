package results

import (
	"encoding/json"
	"fmt"

	"github.com/c360/sparqlclient/errors"
	"github.com/c360/sparqlclient/term"
)

// Head is the header of a SPARQL results document. For bindings
// documents Vars carries the variable names in server-declared order;
// that order is authoritative for every row of the document. Link is
// metadata passed through untouched.
type Head struct {
	Vars []string `json:"vars,omitempty"`
	Link []string `json:"link,omitempty"`
}

// Rows is the body of a bindings document: one map per solution, from
// variable name to wire term. A name absent from a map means the
// variable is unbound in that solution; this is the only representation
// of "unbound".
type Rows struct {
	Bindings []map[string]term.Object `json:"bindings"`
}

// Document is the wire shape of a SPARQL Query Results JSON document.
// The boolean and bindings shapes share it; which one was received is
// implicit in whether the "boolean" or the "results" field is present.
type Document struct {
	Head    *Head `json:"head"`
	Boolean *bool `json:"boolean,omitempty"`
	Results *Rows `json:"results,omitempty"`
}

// decodeDocument parses a buffered JSON body and resolves its implicit
// shape: a document with a "boolean" field is a boolean result; one
// with both "head" and "results" is a bindings document; anything else
// is malformed.
func decodeDocument(body []byte) (*Decoded, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %w", errors.ErrMalformedDocument, err),
			"Decoder", "Decode", "JSON document decode")
	}

	if doc.Boolean != nil {
		return &Decoded{Kind: KindBoolean, Boolean: *doc.Boolean}, nil
	}

	if doc.Head == nil || doc.Results == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: neither boolean nor bindings document", errors.ErrMalformedDocument),
			"Decoder", "Decode", "document shape resolution")
	}

	return &Decoded{Kind: KindBindings, Bindings: newBindings(doc.Head, doc.Results)}, nil
}
