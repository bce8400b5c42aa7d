// Package http implements the REST transport of the notes server.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as the bearer-token access guard, request tracing, access
// logging, metrics, rate limiting and response compression are handled here
// before requests are delegated to the service layer.
package http
