// Package server runs the HTTP transport of the notes server.
//
// It owns the listener lifecycle: startup, shutdown on SIGINT, SIGTERM or
// SIGQUIT, and draining of in-flight requests.
package server
