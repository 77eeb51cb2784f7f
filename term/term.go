package term

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360/sparqlclient/errors"
)

// Wire values of the Object type discriminator.
const (
	TypeURI     = "uri"
	TypeBnode   = "bnode"
	TypeLiteral = "literal"
)

// XSDString is the implicit datatype of literals carrying neither an
// explicit datatype nor a language tag.
var XSDString = mustIRI("http://www.w3.org/2001/XMLSchema#string")

func mustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic(err)
	}
	return iri
}

// Object is one RDF term as it appears in a SPARQL Query Results JSON
// document.
type Object struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Term converts the wire object into a generic RDF term.
//
// Literal subtype resolution follows the priority datatype > lang >
// neither: an object carrying both a datatype and a language tag is
// treated as a datatype-tagged literal.
func (o Object) Term() (rdf.Term, error) {
	switch o.Type {
	case TypeURI:
		iri, err := rdf.NewIRI(o.Value)
		if err != nil {
			return nil, invalid(err, "Term", "IRI construction")
		}
		return iri, nil

	case TypeBnode:
		b, err := rdf.NewBlank(o.Value)
		if err != nil {
			return nil, invalid(err, "Term", "blank node construction")
		}
		return b, nil

	case TypeLiteral:
		switch {
		case o.Datatype != "":
			dt, err := rdf.NewIRI(o.Datatype)
			if err != nil {
				return nil, invalid(err, "Term", "datatype IRI construction")
			}
			return rdf.NewTypedLiteral(o.Value, dt), nil
		case o.Lang != "":
			l, err := rdf.NewLangLiteral(o.Value, o.Lang)
			if err != nil {
				return nil, invalid(err, "Term", "language tag validation")
			}
			return l, nil
		default:
			return rdf.NewTypedLiteral(o.Value, XSDString), nil
		}

	default:
		return nil, invalid(fmt.Errorf("unknown term type %q", o.Type), "Term", "type discrimination")
	}
}

// FromTerm encodes a generic RDF term as a wire object. It is the
// inverse of Object.Term: encoding a term and converting the result
// back yields an equal term.
func FromTerm(t rdf.Term) (Object, error) {
	switch t.Type() {
	case rdf.TermIRI:
		return Object{Type: TypeURI, Value: t.String()}, nil

	case rdf.TermBlank:
		return Object{Type: TypeBnode, Value: strings.TrimPrefix(t.String(), "_:")}, nil

	case rdf.TermLiteral:
		lit, ok := t.(rdf.Literal)
		if !ok {
			return Object{}, invalid(fmt.Errorf("literal term of unexpected concrete type %T", t), "FromTerm", "literal extraction")
		}
		obj := Object{Type: TypeLiteral, Value: lit.String()}
		if lang := lit.Lang(); lang != "" {
			obj.Lang = lang
			return obj, nil
		}
		// xsd:string stays implicit on the wire, matching what
		// endpoints emit for simple literals.
		if lit.DataType != XSDString {
			obj.Datatype = lit.DataType.String()
		}
		return obj, nil

	default:
		return Object{}, invalid(fmt.Errorf("unsupported term type %v", t.Type()), "FromTerm", "type discrimination")
	}
}

func invalid(err error, method, action string) error {
	return errors.WrapInvalid(
		fmt.Errorf("%w: %w", errors.ErrInvalidTerm, err),
		"Object", method, action)
}
