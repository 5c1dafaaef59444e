// Package database opens read-only connections to Radarr's own database.
//
// Radarr stores its library in SQLite by default and optionally in Postgres.
// Reading it directly is an alternative media source to the HTTP API, useful
// when the API is not reachable from the seedbox but the database file is.
//
// # Connect
//
// Connect selects the GORM dialector from Config.Driver, opens SQLite files
// with mode=ro, and pings the database before returning.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns verify that the Movies and MovieFiles
// tables carry the columns the radarr database source reads. The status
// command reports any mismatch before a prune is attempted.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "MovieFiles", []string{"SceneName"})
package database
