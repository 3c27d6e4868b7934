// Package server runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, waiting for cancellation, and
// graceful shutdown bounded by the configured timeout.
package server
