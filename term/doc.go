// Package term converts between the SPARQL Query Results JSON wire
// representation of RDF terms and the generic term model provided by
// github.com/knakk/rdf.
//
// A wire term is an Object with a type discriminator ("uri", "bnode" or
// "literal"), a value, and for literals an optional datatype IRI or
// language tag. Conversion resolves literal subtypes by priority:
// a datatype field wins over a language tag, and a literal carrying
// neither is typed xsd:string.
//
// Conversion is pure: it performs no I/O and has no side effects. Any
// failure (invalid IRI, invalid blank node label, malformed language
// tag) surfaces as an error wrapping errors.ErrInvalidTerm.
package term
