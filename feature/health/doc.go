// Package health probes the torrent and media sources.
//
// It backs both the status command and GET /health. A source that fails to
// list is reported with its error; a database media source additionally has
// its schema checked for the columns the reader queries.
package health
