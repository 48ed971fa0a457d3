// Package server provides the HTTP server for the crypto API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The server wires
//   - the crypto endpoints (internal/api/handlers)
//   - infrastructure handlers (health, readiness, version, metrics, docs)
//
// middleware is in internal/server/middleware
package server
