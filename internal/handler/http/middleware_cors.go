package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// withCORS answers preflight requests and sets the CORS headers for the
// configured origins. Credentials are not allowed; the API authenticates
// with a bearer token, not cookies.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, "Retry-After"},
		MaxAge:         corsMaxAge,
	})(next)
}
