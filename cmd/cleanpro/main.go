// Command cleanpro cleans a CSV or XLSX dataset: placeholder and missing
// values are detected and imputed, exact duplicate rows removed, and
// text-stored numeric columns coerced. It writes the cleaned CSV, a text
// report, and a JSON summary, and appends the run to the history store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cleanpro/internal/config"
	"cleanpro/internal/infrastructure"
	"cleanpro/internal/runstore"
	"cleanpro/internal/services"
)

func main() {
	in := flag.String("in", "", "input CSV/XLSX file, or a directory for batch mode")
	title := flag.String("title", "", "report title (defaults to the input filename)")
	keepDupes := flag.Bool("keep-duplicates", false, "keep exact duplicate rows instead of dropping them")
	noHistory := flag.Bool("no-history", false, "skip recording the run in the history store")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: cleanpro -in <file-or-directory> [-title t] [-keep-duplicates] [-no-history]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("failed to create data directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	var store *runstore.Store
	if cfg.History.Enabled && !*noHistory {
		store, err = runstore.Open(cfg.History.Path, logger)
		if err != nil {
			// History is best-effort; cleaning proceeds without it.
			logger.Warn("run-history store unavailable", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	svc := services.NewCleanService(logger, cfg.Paths, cfg.Cleaning, store)
	ctx := context.Background()

	info, err := os.Stat(*in)
	if err != nil {
		logger.Error("cannot access input", "input", *in, "error", err)
		os.Exit(1)
	}

	if info.IsDir() {
		results, err := svc.CleanBatch(ctx, *in)
		if err != nil {
			logger.Error("batch cleaning failed", "error", err)
			os.Exit(1)
		}
		printJSON(results)
		return
	}

	dropDupes := !*keepDupes
	result, err := svc.CleanFile(ctx, services.CleanRequest{
		InputPath:      *in,
		Title:          *title,
		DropDuplicates: &dropDupes,
	})
	if err != nil {
		logger.Error("cleaning failed", "input", *in, "error", err)
		os.Exit(1)
	}
	printJSON(result)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}
