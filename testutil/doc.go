// Package testutil provides testing utilities for sparqlclient tests.
//
// It contains canned SPARQL protocol response documents and a fake
// endpoint helper, so that tests exercise the client against realistic
// wire payloads without depending on a live SPARQL endpoint.
package testutil
