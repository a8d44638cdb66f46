// Package cleaning implements the data-quality remediation pipeline:
// numeric-column classification, placeholder replacement, duplicate
// elimination, numeric coercion, per-column imputation, and the orchestrator
// that sequences them over one table.
//
// The pipeline characterizes and fixes dirty data rather than rejecting it:
// unparseable cells degrade to null and are counted as type issues, columns
// with nothing to learn a statistic from fall back to heuristics (0, the
// earliest date, the "Unknown" sentinel). Only structural violations of the
// table contract surface as errors.
//
// Basic usage:
//
//	p := cleaning.NewPipeline(logger)
//	cleaned, summary, err := p.Clean(ctx, table, cleaning.DefaultOptions())
package cleaning
