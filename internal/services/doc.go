// Package services hosts the application-level orchestration above the
// cleaning pipeline: file-in, artifacts-out cleaning runs, batch cleaning
// over a directory, and read-only profiling. The pipeline itself stays pure;
// everything touching the filesystem or the run-history store lives here.
package services
