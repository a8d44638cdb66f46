// Command runs lists recent cleaning runs from the history store, newest
// first.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"cleanpro/internal/config"
	"cleanpro/internal/infrastructure"
	"cleanpro/internal/runstore"
)

func main() {
	limit := flag.Int("limit", 50, "maximum number of runs to list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		logger = slog.Default()
	}

	store, err := runstore.Open(cfg.History.Path, logger)
	if err != nil {
		logger.Error("run-history store unavailable", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.List(context.Background(), *limit)
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		logger.Error("failed to encode runs", "error", err)
		os.Exit(1)
	}
}
