// Package prune wires the reconciliation engine to its outer surfaces.
//
// The Service runs reconciliations for both the CLI and the HTTP API. After a
// run it writes the list file (live runs only), archives the report when
// storage is configured, and records metrics. Identical requests arriving
// while a run is in flight join that run instead of starting another.
//
// Routes:
//
//	GET  /candidates?days=&mode=&invert=   report only
//	POST /prune {"days","mode","invert","dry_run"}   dry run unless dry_run is false
package prune
