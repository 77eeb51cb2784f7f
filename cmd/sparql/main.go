// Package main is a minimal command-line caller of the sparqlclient
// package: it posts one query to an endpoint and prints the result.
//
// Bindings print as tab-separated values with a header row of variable
// names and empty cells for unbound variables; booleans print as
// true/false; triples print in N-Triples form.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knakk/rdf"

	"github.com/c360/sparqlclient"
	"github.com/c360/sparqlclient/results"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		endpoint = flag.String("endpoint", getEnv("SPARQL_ENDPOINT", "http://localhost:8080/sparql"),
			"SPARQL endpoint URL")
		accept  = flag.String("accept", "", "override the Accept header")
		timeout = flag.Duration("timeout", 30*time.Second, "query timeout")
	)
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		query = string(src)
	}

	opts := []sparqlclient.Option{}
	if *accept != "" {
		opts = append(opts, sparqlclient.WithAccept(*accept))
	}

	cli, err := sparqlclient.NewClient(*endpoint, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := cli.Query(ctx, query)
	if err != nil {
		return err
	}

	switch res.Kind() {
	case results.KindBoolean:
		fmt.Println(res.Boolean())
		return nil
	case results.KindBindings:
		return printBindings(res.Bindings())
	case results.KindTriples:
		return printTriples(res.Triples())
	default:
		return fmt.Errorf("unknown result kind %v", res.Kind())
	}
}

func printBindings(b *results.Bindings) error {
	fmt.Println(strings.Join(b.Variables(), "\t"))
	for {
		row, err := b.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		cells := make([]string, len(row))
		for i, t := range row {
			if t != nil {
				cells[i] = t.String()
			}
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}

func printTriples(stream *results.TripleStream) error {
	defer stream.Close()
	for {
		t, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Print(t.Serialize(rdf.NTriples))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
