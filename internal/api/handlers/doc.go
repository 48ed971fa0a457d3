// Package handlers implements the four crypto API endpoints.
//
//   - POST /encrypt: encode every depth-1 value of a JSON object
//   - POST /decrypt: decode every depth-1 string value, values that are not tokens are returned unchanged
//   - POST /sign: sign any JSON value
//   - POST /verify: check a signature against a JSON object
//
// Request bodies are parsed with jsonvalue so member order and number literals survive the round trip.
package handlers
