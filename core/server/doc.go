// Package server holds the HTTP server configuration.
//
// The serve command starts the Fiber application; this package only defines
// the listen port, the API key guarding every route, and the upper bound on
// retention thresholds accepted from API callers.
package server
