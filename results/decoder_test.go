package results

import (
	"io"
	"strings"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sparqlclient/errors"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"application/sparql-results+json", MediaTypeResultsJSON},
		{"application/sparql-results+json; charset=utf-8", MediaTypeResultsJSON},
		{"Application/SPARQL-Results+JSON", MediaTypeResultsJSON},
		{"text/turtle;charset=UTF-8", MediaTypeTurtle},
		{"text/plain", "text/plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in), "normalize(%q)", tt.in)
	}
}

func TestSupported(t *testing.T) {
	for _, ct := range []string{
		MediaTypeResultsJSON,
		MediaTypeResultsXML,
		MediaTypeTurtle,
		MediaTypeNTriples,
		MediaTypeRDFXML,
	} {
		assert.True(t, Supported(ct), ct)
	}
	assert.False(t, Supported("text/plain"))
}

func TestDecode_JSONBoolean(t *testing.T) {
	got, err := Decode("application/sparql-results+json; charset=utf-8",
		body(`{"head":{},"boolean":true}`))
	require.NoError(t, err)
	assert.Equal(t, KindBoolean, got.Kind)
	assert.True(t, got.Boolean)
}

func TestDecode_JSONBindings(t *testing.T) {
	got, err := Decode(MediaTypeResultsJSON,
		body(`{"head":{"vars":["x"]},"results":{"bindings":[{"x":{"type":"uri","value":"tag:a"}}]}}`))
	require.NoError(t, err)
	require.Equal(t, KindBindings, got.Kind)
	assert.Equal(t, []string{"x"}, got.Bindings.Variables())
	assert.Equal(t, 1, got.Bindings.Len())
}

func TestDecode_XMLBindingsAlwaysFails(t *testing.T) {
	// A perfectly valid XML results body still errors: the format is
	// recognized but deliberately not implemented.
	_, err := Decode(MediaTypeResultsXML,
		body(`<?xml version="1.0"?><sparql><boolean>true</boolean></sparql>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotImplemented)
	assert.True(t, errors.IsFatal(err))
}

func TestDecode_UnsupportedContentTypeNamesValue(t *testing.T) {
	_, err := Decode("text/plain", body("hello"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedContentType)
	assert.Contains(t, err.Error(), "text/plain")
}

func TestDecode_Turtle(t *testing.T) {
	got, err := Decode("text/turtle", body("<tag:s> <tag:p> <tag:o> .\n"))
	require.NoError(t, err)
	require.Equal(t, KindTriples, got.Kind)
	require.NotNil(t, got.Triples)

	tr, err := got.Triples.Next()
	require.NoError(t, err)
	assert.Equal(t, "tag:s", tr.Subj.String())
	assert.Equal(t, "tag:p", tr.Pred.String())
	assert.Equal(t, "tag:o", tr.Obj.String())
	assert.Equal(t, rdf.TermIRI, tr.Subj.Type())

	_, err = got.Triples.Next()
	assert.Equal(t, io.EOF, err)
}

func TestDecode_NTriples(t *testing.T) {
	got, err := Decode(MediaTypeNTriples,
		body("<tag:s> <tag:p> \"42\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n"))
	require.NoError(t, err)
	require.Equal(t, KindTriples, got.Kind)

	tr, err := got.Triples.Next()
	require.NoError(t, err)
	assert.Equal(t, rdf.TermLiteral, tr.Obj.Type())
	assert.Equal(t, "42", tr.Obj.String())
}

func TestTripleStream_ParseFailureTerminates(t *testing.T) {
	got, err := Decode(MediaTypeNTriples, body("this is not n-triples\n"))
	require.NoError(t, err)

	_, err = got.Triples.Next()
	require.Error(t, err)
	require.NotEqual(t, io.EOF, err)

	// The failure is terminal and sticky.
	_, err2 := got.Triples.Next()
	assert.Equal(t, err, err2)
}

func TestTripleStream_CloseEarly(t *testing.T) {
	got, err := Decode(MediaTypeTurtle, body("<tag:s> <tag:p> <tag:o> .\n"))
	require.NoError(t, err)
	require.NoError(t, got.Triples.Close())

	_, err = got.Triples.Next()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, got.Triples.Close())
}
