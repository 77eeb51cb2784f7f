package term

import (
	"encoding/json"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sparqlclient/errors"
)

func TestObject_JSONShape(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Object
	}{
		{
			name: "uri",
			src:  `{"type":"uri","value":"tag:u"}`,
			want: Object{Type: TypeURI, Value: "tag:u"},
		},
		{
			name: "literal simple",
			src:  `{"type":"literal","value":"simple"}`,
			want: Object{Type: TypeLiteral, Value: "simple"},
		},
		{
			name: "literal datatype",
			src:  `{"type":"literal","value":"datatype","datatype":"tag:d"}`,
			want: Object{Type: TypeLiteral, Value: "datatype", Datatype: "tag:d"},
		},
		{
			name: "literal lang",
			src:  `{"type":"literal","value":"lang","xml:lang":"en"}`,
			want: Object{Type: TypeLiteral, Value: "lang", Lang: "en"},
		},
		{
			name: "bnode",
			src:  `{"type":"bnode","value":"bn0"}`,
			want: Object{Type: TypeBnode, Value: "bn0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Object
			require.NoError(t, json.Unmarshal([]byte(tt.src), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObject_Term_URI(t *testing.T) {
	got, err := Object{Type: TypeURI, Value: "tag:u"}.Term()
	require.NoError(t, err)

	want, err := rdf.NewIRI("tag:u")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestObject_Term_Bnode(t *testing.T) {
	got, err := Object{Type: TypeBnode, Value: "bn0"}.Term()
	require.NoError(t, err)
	assert.Equal(t, rdf.TermBlank, got.Type())
}

func TestObject_Term_SimpleLiteralIsXSDString(t *testing.T) {
	got, err := Object{Type: TypeLiteral, Value: "simple"}.Term()
	require.NoError(t, err)

	lit, ok := got.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "simple", lit.String())
	assert.Equal(t, XSDString, lit.DataType)
}

func TestObject_Term_TypedLiteral(t *testing.T) {
	got, err := Object{
		Type:     TypeLiteral,
		Value:    "42",
		Datatype: "http://www.w3.org/2001/XMLSchema#integer",
	}.Term()
	require.NoError(t, err)

	lit, ok := got.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "42", lit.String())
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", lit.DataType.String())
}

func TestObject_Term_LangLiteral(t *testing.T) {
	got, err := Object{Type: TypeLiteral, Value: "chat", Lang: "fr"}.Term()
	require.NoError(t, err)

	want, err := rdf.NewLangLiteral("chat", "fr")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestObject_Term_DatatypeWinsOverLang(t *testing.T) {
	got, err := Object{Type: TypeLiteral, Value: "v", Datatype: "tag:d", Lang: "en"}.Term()
	require.NoError(t, err)

	lit, ok := got.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "tag:d", lit.DataType.String())
	assert.Empty(t, lit.Lang())
}

func TestObject_Term_Failures(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
	}{
		{"invalid IRI", Object{Type: TypeURI, Value: "not a valid iri"}},
		{"invalid datatype IRI", Object{Type: TypeLiteral, Value: "v", Datatype: "not a valid iri"}},
		{"unknown type", Object{Type: "variable", Value: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.obj.Term()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidTerm)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
	}{
		{"iri", Object{Type: TypeURI, Value: "tag:u"}},
		{"bnode", Object{Type: TypeBnode, Value: "bn0"}},
		{"simple literal", Object{Type: TypeLiteral, Value: "simple"}},
		{"lang literal", Object{Type: TypeLiteral, Value: "lang", Lang: "en"}},
		{"typed literal", Object{Type: TypeLiteral, Value: "42", Datatype: "http://www.w3.org/2001/XMLSchema#integer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.obj.Term()
			require.NoError(t, err)

			encoded, err := FromTerm(first)
			require.NoError(t, err)
			assert.Equal(t, tt.obj, encoded)

			second, err := encoded.Term()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
