// Package main queries Wikidata for all Doctor Who performers and
// prints one doctor/performer pair per line. It is an illustrative
// caller of the sparqlclient package, not part of the library.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/c360/sparqlclient"
	"github.com/c360/sparqlclient/results"
)

const endpoint = "https://query.wikidata.org/bigdata/namespace/wdq/sparql"

const query = `
	#All Dr. Who performers
	SELECT ?doctor ?doctorLabel ?ordinal ?performer ?performerLabel
	WHERE {
	  ?doctor wdt:P31 wd:Q47543030 .
	  OPTIONAL { ?doctor wdt:P1545 ?ordinal }
	  OPTIONAL { ?doctor p:P175 / ps:P175 ?performer }
	  SERVICE wikibase:label { bd:serviceParam wikibase:language "[AUTO_LANGUAGE],en" }
	}
	ORDER BY ASC(xsd:integer(?ordinal))
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cli, err := sparqlclient.NewClient(endpoint)
	if err != nil {
		return err
	}

	res, err := cli.Query(context.Background(), query)
	if err != nil {
		return err
	}
	if res.Kind() != results.KindBindings {
		return fmt.Errorf("unexpected result kind %v for a SELECT query", res.Kind())
	}

	b := res.Bindings()
	for {
		row, err := b.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		// Head order: doctor, doctorLabel, ordinal, performer, performerLabel.
		doctorLabel := "NULL"
		if row[1] != nil {
			doctorLabel = row[1].String()
		}
		performerLabel := "NULL"
		if row[4] != nil {
			performerLabel = row[4].String()
		}
		fmt.Printf("%s\t%s\n", doctorLabel, performerLabel)
	}
}
