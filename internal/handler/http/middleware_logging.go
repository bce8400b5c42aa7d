package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no route so that arbitrary
// paths do not blow up metric cardinality.
const unmatchedRoute = "unmatched"

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		h.recorder.RecordHTTPRequest(method, route, status, duration)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
