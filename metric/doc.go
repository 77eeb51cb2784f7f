// Package metric provides optional Prometheus-based instrumentation for
// the SPARQL client.
//
// A Registry owns the client's metric set: queries by result kind,
// failures by error class, end-to-end query duration, and buffered
// response bytes. It is wired into a client through the WithMetrics
// option; a client constructed without one records nothing.
//
// The registry exposes a Prometheus HTTP handler so embedding programs
// can publish the metrics on whatever mux they already run:
//
//	registry := metric.NewRegistry()
//	cli, _ := sparqlclient.NewClient(endpoint, sparqlclient.WithMetrics(registry))
//	http.Handle("/metrics", registry.Handler())
package metric
