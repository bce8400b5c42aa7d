package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 2 * time.Minute
)

type httpServer struct {
	server *http.Server

	mu   sync.Mutex
	addr net.Addr

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			// a little headroom over the per-request timeout lets the
			// timeout middleware write its own response
			WriteTimeout: cfg.RequestTimeout + 5*time.Second,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// RunServer listens on the configured address and blocks until the server
// is shut down. A clean shutdown returns nil.
func (h *httpServer) RunServer() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %q: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.addr = listener.Addr()
	h.mu.Unlock()

	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")

	if err = h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}

// Addr returns the bound listener address, or nil before RunServer.
func (h *httpServer) Addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}
