// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects Zap's development configuration (ISO8601 timestamps,
// caller info); any other level selects the production configuration. The
// console format is meant for interactive CLI runs, JSON for the server.
//
// # Request Correlation
//
// The HTTP server tags every request with a RayID. WithRayID extracts it from
// the Fiber context so all log lines of one prune request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Starting prune", zap.Int("days", 30))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Prune failed", zap.Error(err))
package logger
