// Package sparqlclient implements a client for the SPARQL 1.1 protocol:
// it submits a query to a remote endpoint over HTTP POST and exposes the
// result in the shape the server negotiated.
//
// # Result Shapes
//
// A query yields exactly one of three result shapes, declared by the
// response's content type:
//
//   - Boolean: the answer to an ASK query
//   - Bindings: the solution rows of a SELECT query, drained one row at
//     a time in server order
//   - Triples: the lazily-decoded triples of a CONSTRUCT or DESCRIBE
//     query
//
// RDF terms and triples use the generic model of github.com/knakk/rdf.
//
// # Basic Usage
//
//	cli, err := sparqlclient.NewClient("https://query.wikidata.org/bigdata/namespace/wdq/sparql")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := cli.Query(ctx, "SELECT ?s WHERE { ?s ?p ?o } LIMIT 10")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch res.Kind() {
//	case results.KindBindings:
//	    b := res.Bindings()
//	    for {
//	        row, err := b.Next()
//	        if err == io.EOF {
//	            break
//	        }
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        fmt.Println(row)
//	    }
//	case results.KindBoolean:
//	    fmt.Println(res.Boolean())
//	}
//
// # Scope
//
// The client performs one request/response exchange per call: no
// retries, no caching, no connection pooling beyond what the configured
// HTTP transport provides. The query string is opaque and sent verbatim;
// the client neither parses nor validates SPARQL syntax. A client is
// safe for concurrent use if its transport is; the default *http.Client
// is.
//
// Timeouts and cancellation belong to the transport and the caller's
// context. When a call is aborted no partial result has been produced:
// decoding begins only after the response envelope arrives.
package sparqlclient
