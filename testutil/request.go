package testutil

import (
	"io"
	"net/http"
)

// RecordedRequest holds the parts of a captured endpoint request that
// client tests assert on.
type RecordedRequest struct {
	Method      string
	Accept      string
	ContentType string
	RequestID   string
	Body        string
}

// Capture fills the record from an incoming request, consuming its body.
func (rr *RecordedRequest) Capture(r *http.Request) {
	rr.Method = r.Method
	rr.Accept = r.Header.Get("Accept")
	rr.ContentType = r.Header.Get("Content-Type")
	rr.RequestID = r.Header.Get("X-Request-Id")
	body, _ := io.ReadAll(r.Body)
	rr.Body = string(body)
}
