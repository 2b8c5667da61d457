// Command export loads a notes store and writes the full entity-graph
// export as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"notestash/internal/catalog"
	"notestash/internal/config"
	"notestash/internal/store"
)

func main() {
	dbPath := flag.String("db", "", "path to the notes store (default: NOTESTORE_PATH or well-known locations)")
	outPath := flag.String("o", "", "output file (default: stdout)")
	includeContent := flag.Bool("content", true, "include note body text in the export")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	storePath := *dbPath
	if storePath == "" {
		storePath = cfg.StorePath
	}
	if storePath == "" {
		storePath, err = store.DefaultPath()
		if err != nil {
			log.Fatalf("No store given and none found at default locations: %v", err)
		}
	}

	graph, err := catalog.Load(context.Background(), storePath)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(graph.Export(*includeContent)); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}
}
