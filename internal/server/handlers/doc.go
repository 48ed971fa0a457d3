// Package handlers provides the infrastructure HTTP handlers
// (health, readiness, version and API docs).
//
// The crypto endpoints are in internal/api/handlers.
package handlers
