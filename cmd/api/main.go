package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"notestash/internal/catalog"
	"notestash/internal/config"
	"notestash/internal/http"
	"notestash/internal/store"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	// Resolve the store path, probing default locations when none is
	// configured.
	storePath := cfg.StorePath
	if storePath == "" {
		storePath, err = store.DefaultPath()
		if err != nil {
			log.Fatalf("No store configured and none found at default locations: %v", err)
		}
	}

	// Load the full entity graph once at startup; the API is read-only
	// over the loaded snapshot.
	graph, err := catalog.Load(context.Background(), storePath)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	router := http.NewRouter(&http.Deps{Catalog: graph})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "store", storePath)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
