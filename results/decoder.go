package results

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360/sparqlclient/errors"
)

// Media types recognized by the decoder registry.
const (
	MediaTypeResultsJSON = "application/sparql-results+json"
	MediaTypeResultsXML  = "application/sparql-results+xml"
	MediaTypeTurtle      = "text/turtle"
	MediaTypeNTriples    = "application/n-triples"
	MediaTypeRDFXML      = "application/rdf+xml"
)

// Kind discriminates the three shapes a decoded result can take.
type Kind int

const (
	// KindBoolean is the result of an ASK query.
	KindBoolean Kind = iota
	// KindBindings is the result of a SELECT query.
	KindBindings
	// KindTriples is the result of a CONSTRUCT or DESCRIBE query.
	KindTriples
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindBindings:
		return "bindings"
	case KindTriples:
		return "triples"
	default:
		return "unknown"
	}
}

// Decoded is a tagged result: exactly one of Boolean, Bindings or
// Triples is meaningful, selected by Kind.
type Decoded struct {
	Kind     Kind
	Boolean  bool
	Bindings *Bindings
	Triples  *TripleStream
}

// decodeFunc decodes one media type. It takes ownership of the body:
// strategies that decode eagerly must close it before returning,
// strategies that stream must close it when the stream ends.
type decodeFunc func(body io.ReadCloser) (*Decoded, error)

// decoders maps normalized base media types to decoder strategies.
// Supported formats stay declarative: adding one means adding an entry
// here, nothing else branches on content types.
var decoders = map[string]decodeFunc{
	MediaTypeResultsJSON: decodeJSON,
	MediaTypeResultsXML:  decodeXMLUnimplemented,
	MediaTypeTurtle:      tripleDecoder(rdf.Turtle),
	MediaTypeNTriples:    tripleDecoder(rdf.NTriples),
	MediaTypeRDFXML:      tripleDecoder(rdf.RDFXML),
}

// Supported reports whether the decoder registry has an entry for the
// given content type. Note that a registered type may still refuse to
// decode (XML bindings).
func Supported(contentType string) bool {
	_, ok := decoders[normalize(contentType)]
	return ok
}

// Decode dispatches a response body to the decoder strategy registered
// for its content type. Parameters such as charset are stripped before
// matching; real endpoints append them.
//
// Decode takes ownership of body. For boolean and bindings results the
// body is read in full and closed before Decode returns; for triple
// results it is held open and drained lazily by the returned stream.
func Decode(contentType string, body io.ReadCloser) (*Decoded, error) {
	decode, ok := decoders[normalize(contentType)]
	if !ok {
		_ = body.Close()
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrUnsupportedContentType, contentType),
			"Decoder", "Decode", "content type dispatch")
	}
	return decode(body)
}

// normalize strips parameters and case from a Content-Type value,
// leaving the base media type.
func normalize(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Fall back to a manual strip so that a parameter the mime
		// package rejects still cannot mask a recognizable base type.
		mediaType = contentType
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = mediaType[:i]
		}
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mediaType
}

func decodeJSON(body io.ReadCloser) (*Decoded, error) {
	defer body.Close()

	buf, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.WrapTransient(err, "Decoder", "Decode", "response body read")
	}
	return decodeDocument(buf)
}

// decodeXMLUnimplemented is the registered stop for XML bindings: the
// format is recognized but deliberately not decoded, and must never be
// guessed-and-decoded as anything else.
func decodeXMLUnimplemented(body io.ReadCloser) (*Decoded, error) {
	_ = body.Close()
	return nil, errors.WrapFatal(
		fmt.Errorf("%w: %s decoding", errors.ErrNotImplemented, MediaTypeResultsXML),
		"Decoder", "Decode", "XML bindings decode")
}

// tripleDecoder builds a strategy delegating to the streaming decoder
// for one RDF triple serialization.
func tripleDecoder(format rdf.Format) decodeFunc {
	return func(body io.ReadCloser) (*Decoded, error) {
		stream := &TripleStream{
			dec:    rdf.NewTripleDecoder(body, format),
			closer: body,
		}
		return &Decoded{Kind: KindTriples, Triples: stream}, nil
	}
}

// TripleStream is the lazily-decoded result of a CONSTRUCT or DESCRIBE
// query. Triples are produced one at a time as the underlying decoder
// advances; memory stays bounded per triple regardless of result size.
type TripleStream struct {
	dec interface {
		Decode() (rdf.Triple, error)
	}
	closer io.Closer
	err    error
	done   bool
}

// Next returns the next triple, or io.EOF once the stream is exhausted.
//
// A parse failure terminates production: the failing call and every
// call after it return the same error, and the underlying body is
// closed.
func (s *TripleStream) Next() (rdf.Triple, error) {
	if s.err != nil {
		return rdf.Triple{}, s.err
	}

	t, err := s.dec.Decode()
	if err == io.EOF {
		s.err = io.EOF
		s.close()
		return rdf.Triple{}, io.EOF
	}
	if err != nil {
		s.err = errors.WrapInvalid(err, "TripleStream", "Next", "triple decode")
		s.close()
		return rdf.Triple{}, s.err
	}
	return t, nil
}

// Close releases the underlying response body. It is safe to call at
// any point and more than once; a fully drained stream is already
// closed.
func (s *TripleStream) Close() error {
	if s.err == nil {
		s.err = io.EOF
	}
	return s.close()
}

func (s *TripleStream) close() error {
	if s.done {
		return nil
	}
	s.done = true
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
