// Package integration contains end-to-end tests for the crypto API server.
//
// The server is started in-process on a free port and the tests call it over HTTP,
// so routing, middleware and error mapping are exercised together.
//
// These tests assume the crypto and jsonvalue packages are working correctly (tested separately).
// If bugs are introduced in lower-level packages, there will be cascading failures here -
// fix the low-level problems first.
package integration
