// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation protecting the prune endpoints. Metrics and
//     swagger paths can be exempted.
//   - RayID: a unique request ID injected into the context and response
//     headers, picked up by logger.WithRayID.
//
// Register RayID first so every later log line carries the ID.
package middleware
