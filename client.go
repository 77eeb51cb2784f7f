package sparqlclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360/sparqlclient/errors"
	"github.com/c360/sparqlclient/metric"
	"github.com/c360/sparqlclient/results"
)

// DefaultAccept is the default Accept HTTP header sent with every
// query: a weighted list covering the five supported media types,
// favoring JSON bindings, then XML bindings, then Turtle, then
// N-Triples, then RDF/XML.
const DefaultAccept = "application/sparql-results+json," +
	"application/sparql-results+xml;q=0.8," +
	"text/turtle," +
	"application/n-triples;q=0.9," +
	"application/rdf+xml;q=0.8"

// queryContentType is the request media type of the SPARQL protocol's
// direct POST operation.
const queryContentType = "application/sparql-query"

// Doer is the pluggable HTTP transport: any component offering one
// request/response exchange. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a SPARQL protocol client bound to one endpoint URL.
//
// Configuration is immutable after construction. A Client may be reused
// for sequential queries, and concurrently, provided its transport
// supports it; the Client itself holds no mutable state and adds no
// locking.
type Client struct {
	endpoint   string
	httpClient Doer
	accept     string
	metrics    *metric.Registry
	requestID  bool
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport. Use it to
// control timeouts, TLS, proxies or connection pooling; the client
// itself enforces none of these.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithAccept replaces the Accept HTTP header sent with every query.
//
// This might be useful if the endpoint implements content negotiation
// incorrectly. See also DefaultAccept.
func WithAccept(accept string) Option {
	return func(c *Client) {
		c.accept = accept
	}
}

// WithMetrics wires a metric registry into the client. Queries,
// failures, durations and response sizes are recorded on it.
func WithMetrics(r *metric.Registry) Option {
	return func(c *Client) {
		c.metrics = r
	}
}

// WithRequestID makes the client send a fresh UUID in an X-Request-Id
// header with every query, for correlation in endpoint logs.
func WithRequestID() Option {
	return func(c *Client) {
		c.requestID = true
	}
}

// NewClient creates a Client on the given SPARQL endpoint URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Client", "NewClient", "endpoint is required")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, errors.WrapInvalid(err, "Client", "NewClient", "endpoint URL parse")
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		accept:     DefaultAccept,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Client", "NewClient", "nil HTTP transport")
	}
	if strings.TrimSpace(c.accept) == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Client", "NewClient", "empty Accept header")
	}

	return c, nil
}

// Endpoint returns the endpoint URL this client posts queries to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Accept returns the Accept HTTP header used by this client.
func (c *Client) Accept() string {
	return c.accept
}

// Query prepares the given query text and executes it. See
// QueryPrepared for the execution contract.
func (c *Client) Query(ctx context.Context, query string) (*Result, error) {
	q, err := Prepare(query)
	if err != nil {
		c.metrics.RecordFailure(errors.Classify(err).String())
		return nil, err
	}
	return c.QueryPrepared(ctx, q)
}

// QueryPrepared executes a prepared query: one HTTP POST of the raw
// query text, then result decoding keyed by the response's declared
// content type.
//
// Transport failures propagate as transient errors; a non-2xx status,
// an unsupported content type or an undecodable document each surface
// as a single typed error. There is no partial-success state and no
// retry.
func (c *Client) QueryPrepared(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()

	res, err := c.roundTrip(ctx, q)
	if err != nil {
		c.metrics.RecordFailure(errors.Classify(err).String())
		return nil, err
	}

	c.metrics.RecordQuery(res.Kind().String(), time.Since(start))
	return res, nil
}

func (c *Client) roundTrip(ctx context.Context, q Query) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(q.Text()))
	if err != nil {
		return nil, errors.WrapInvalid(err, "Client", "Query", "request construction")
	}
	req.Header.Set("Accept", c.accept)
	req.Header.Set("Content-Type", queryContentType)
	if c.requestID {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapTransient(err, "Client", "Query", "execute request")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: HTTP %d: %s", errors.ErrUnexpectedStatus, resp.StatusCode, resp.Status),
			"Client", "Query", "status check")
	}

	body := io.ReadCloser(resp.Body)
	if c.metrics != nil {
		body = &countingBody{rc: resp.Body, metrics: c.metrics}
	}

	decoded, err := results.Decode(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, err
	}
	return &Result{decoded: decoded}, nil
}

// countingBody records the size of a response body on the metric
// registry once the body is closed.
type countingBody struct {
	rc      io.ReadCloser
	metrics *metric.Registry
	n       int
	closed  bool
}

func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.rc.Read(p)
	b.n += n
	return n, err
}

func (b *countingBody) Close() error {
	if !b.closed {
		b.closed = true
		b.metrics.RecordResponseBytes(b.n)
	}
	return b.rc.Close()
}
