// Package radarr implements the media source: the Radarr movie library
// indexed by the release (scene) name each file was imported from.
//
// Two readers are provided. APISource calls GET /api/v3/movie and is the
// default. DBSource queries Radarr's SQLite or Postgres database directly,
// which works while Radarr itself is down; CheckSchema verifies the tables
// it reads before a run.
//
// Only movies with a file on disk and a non-empty scene name are indexed.
package radarr
