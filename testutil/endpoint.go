package testutil

import (
	"net/http"
	"net/http/httptest"
)

// Canned response documents matching what real endpoints emit.
const (
	// BooleanTrueJSON is an ASK result document answering true.
	BooleanTrueJSON = `{"head":{},"boolean":true}`

	// BooleanFalseJSON is an ASK result document answering false.
	BooleanFalseJSON = `{"head":{},"boolean":false}`

	// EmptyBindingsJSON is a SELECT result with one variable and no rows.
	EmptyBindingsJSON = `{"head":{"vars":["x"]},"results":{"bindings":[]}}`

	// AnswerBindingsJSON is the SELECT (42 as ?answer) {} result.
	AnswerBindingsJSON = `{"head":{"vars":["answer"]},"results":{"bindings":[` +
		`{"answer":{"type":"literal","value":"42",` +
		`"datatype":"http://www.w3.org/2001/XMLSchema#integer"}}]}}`

	// OneTripleTurtle is a CONSTRUCT result carrying a single triple.
	OneTripleTurtle = "<tag:s> <tag:p> <tag:o> .\n"
)

// Endpoint starts a fake SPARQL endpoint answering every request with
// the given content type and body. Callers own the returned server and
// must Close it.
func Endpoint(contentType, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
}

// RecordingEndpoint starts a fake SPARQL endpoint that captures each
// request into the given slot before answering like Endpoint.
func RecordingEndpoint(contentType, body string, slot *RecordedRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slot.Capture(r)
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
}
