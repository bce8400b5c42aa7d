package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order: recover, real ip, trace id,
// logging and metrics, cors, gzip, request timeout; protected routes add the
// access guard followed by the per-user rate limit.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Get("/auth/google", h.googleLogin)
			r.Get("/auth/google/callback", h.googleCallback)
		})

		// routes behind the access guard
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.withRateLimit)

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.listNotes)
				r.Post("/", h.createNote)
				r.Get("/{noteId}", h.getNote)
				r.Put("/{noteId}", h.updateNote)
				r.Delete("/{noteId}", h.deleteNote)
			})

			r.Get("/users/me", h.me)
		})
	})

	return router
}
