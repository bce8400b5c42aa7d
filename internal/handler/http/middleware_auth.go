package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// Reasons reported to the auth failure metric.
const (
	authFailureMissingHeader    = "missing_header"
	authFailureInvalidHeader    = "invalid_header"
	authFailureExpired          = "expired"
	authFailureInvalidSignature = "invalid_signature"
	authFailureMalformed        = "malformed"
)

// auth rejects requests without a valid bearer token with 401. On success the
// caller identity from the token claims is stored in the request context;
// the user store is not consulted.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.recorder.RecordAuthFailure(authFailureMissingHeader)
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.recorder.RecordAuthFailure(authFailureInvalidHeader)
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			h.recorder.RecordAuthFailure(authFailureReason(err))
			log.Debug().Err(err).Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		identity := claims.Identity()
		userLogger := log.With().Str("user_id", identity.UserID).Logger()
		ctx = userLogger.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return authFailureExpired
	case errors.Is(err, service.ErrTokenInvalidSignature):
		return authFailureInvalidSignature
	default:
		return authFailureMalformed
	}
}
