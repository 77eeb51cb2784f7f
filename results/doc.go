// Package results decodes SPARQL protocol response bodies into typed
// results.
//
// Decoding is keyed by the response's declared content type through an
// explicit registry of decoder strategies. Five media types are
// recognized:
//
//   - application/sparql-results+json: decoded in full into either a
//     boolean result or a bindings document, discriminated by probing
//     for the top-level "boolean" field
//   - application/sparql-results+xml: recognized but deliberately not
//     implemented; decoding always fails with errors.ErrNotImplemented
//   - text/turtle, application/n-triples, application/rdf+xml:
//     delegated to the streaming triple decoders of
//     github.com/knakk/rdf and exposed as a lazy TripleStream
//
// Any other content type fails with errors.ErrUnsupportedContentType,
// naming the offending value. Content type parameters such as charset
// are stripped before matching.
//
// Bindings are exposed as a forward-only, order-preserving, draining
// sequence: each call to Next consumes one solution row, materializing
// its terms on demand. A malformed term surfaces as an error on the row
// that carries it; rows already delivered remain valid.
package results
