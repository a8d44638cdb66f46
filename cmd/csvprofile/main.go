// Command csvprofile runs read-only quality analysis of a CSV or XLSX file:
// per-column missing counts, type issues, uniqueness, and sample values.
// Nothing is written or mutated.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"cleanpro/internal/config"
	"cleanpro/internal/infrastructure"
	"cleanpro/internal/services"
)

func main() {
	in := flag.String("in", "", "input CSV/XLSX file")
	asJSON := flag.Bool("json", false, "emit profiles as JSON instead of a table")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: csvprofile -in <file> [-json]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		logger = slog.Default()
	}

	svc := services.NewCleanService(logger, cfg.Paths, cfg.Cleaning, nil)
	profiles, err := svc.Profile(context.Background(), *in)
	if err != nil {
		logger.Error("profiling failed", "input", *in, "error", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profiles); err != nil {
			logger.Error("failed to encode profiles", "error", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tDTYPE\tNUMERIC\tMISSING\tMISSING%\tTYPE ISSUES\tUNIQUE\tSAMPLES")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%.2f\t%d\t%d\t%v\n",
			p.Column, p.Dtype, p.InferredNumeric, p.MissingCount, p.MissingPct,
			p.TypeIssueCount, p.UniqueCount, p.SampleValues)
	}
	w.Flush()
}
