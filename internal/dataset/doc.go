// Package dataset provides the in-memory table model used by the cleaning
// pipeline: a tagged cell-value variant, typed columns, missing-cell
// detection, and CSV/XLSX readers plus a CSV writer.
//
// Tables are ordered collections of named columns sharing one row count.
// Readers infer a native storage type per column (numeric, datetime, bool)
// only when every non-empty cell parses as that type; everything else stays
// generic text for the pipeline to coerce.
package dataset
