// Package errors provides standardized error handling patterns for the
// SPARQL client.
//
// # Overview
//
// The package implements a three-class error classification system:
// Transient (temporary, typically network-level), Invalid (bad input or
// an unusable response, non-retryable), and Fatal (unrecoverable by the
// caller, such as a deliberately unimplemented response format).
//
// The classification integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains. The
// client itself never retries; classification exists so that callers can
// decide what to do with a failed query without matching error strings.
//
// # Error Taxonomy
//
// Every failure a query can produce maps to one of the sentinel errors:
//
//   - ErrUnsupportedContentType: the endpoint answered with a media type
//     the client does not recognize (invalid)
//   - ErrNotImplemented: the endpoint answered with a recognized media
//     type that is deliberately not decoded (fatal)
//   - ErrMalformedDocument: a results document matched neither the
//     boolean nor the bindings shape (invalid)
//   - ErrInvalidTerm: an individual term's lexical form, label or IRI
//     failed validation (invalid)
//   - ErrUnexpectedStatus: the endpoint answered with a non-2xx status
//     (transient)
//
// Transport failures (network, TLS, timeout) are wrapped transient and
// otherwise propagate unchanged.
//
// # Quick Start
//
// Wrap errors with context for debugging:
//
//	if err := dec.Decode(&doc); err != nil {
//	    return errors.WrapInvalid(err, "Decoder", "Decode", "document decode")
//	}
//
// Check sentinel errors with the standard library:
//
//	if errors.Is(err, errors.ErrUnsupportedContentType) {
//	    // the endpoint negotiated a format we cannot handle
//	}
package errors
