package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// limiter throttles callers per identity (or per client address on the
	// public auth routes). Nil disables rate limiting.
	limiter *RateLimiter

	recorder metrics.Recorder
	// gatherer backs GET /metrics. Nil leaves the route unregistered.
	gatherer prometheus.Gatherer

	// stateSignKey signs the OAuth state nonce kept in a cookie between the
	// redirect and the callback.
	stateSignKey   string
	requestTimeout time.Duration
	corsOrigins    []string

	traceIDs interface{ Generate() string }

	logger *logger.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithRateLimiter enables per-caller rate limiting.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(h *Handler) { h.limiter = limiter }
}

// WithMetrics records request metrics in recorder and serves gatherer on
// GET /metrics.
func WithMetrics(recorder metrics.Recorder, gatherer prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.recorder = recorder
		h.gatherer = gatherer
	}
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services:       services,
		recorder:       metrics.Nop(),
		stateSignKey:   cfg.App.StateSignKey,
		requestTimeout: cfg.Server.RequestTimeout,
		corsOrigins:    cfg.Server.CORSOrigins,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
