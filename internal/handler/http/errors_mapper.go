package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const internalServerErrorMessage = "Internal server error"

type errorRule struct {
	target  error
	status  int
	message string
}

// errorRules is checked in order, so more specific errors come before the
// errors they wrap.
var errorRules = []errorRule{
	{service.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
	{service.ErrTokenInvalidSignature, http.StatusUnauthorized, "Invalid token"},
	{service.ErrTokenMalformed, http.StatusUnauthorized, "Invalid token"},
	{service.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{ErrMissingIdentity, http.StatusUnauthorized, "Unauthorized"},

	{ErrInvalidState, http.StatusBadRequest, "Invalid OAuth state"},
	{adapter.ErrEmptyCode, http.StatusBadRequest, "Authorization code is required"},
	{adapter.ErrEmailNotVerified, http.StatusUnauthorized, "Email is not verified by the provider"},
	{adapter.ErrBadRequest, http.StatusUnauthorized, "Authorization code was rejected"},
	{adapter.ErrUnauthorized, http.StatusUnauthorized, "Authorization code was rejected"},
	{adapter.ErrExchangeFailed, http.StatusBadGateway, internalServerErrorMessage},

	{service.ErrForbiddenAccess, http.StatusForbidden, "You do not have permission to access this note"},
	{service.ErrForbiddenUpdate, http.StatusForbidden, "You do not have permission to update this note"},
	{service.ErrForbiddenDelete, http.StatusForbidden, "You do not have permission to delete this note"},
	{service.ErrForbidden, http.StatusForbidden, "Forbidden"},

	{service.ErrNoteNotFound, http.StatusNotFound, "Note not found"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{ErrRouteNotFound, http.StatusNotFound, "Not found"},

	{service.ErrConflict, http.StatusConflict, "Duplicate entry"},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "Duplicate entry"},
	{store.ErrProviderIDAlreadyExists, http.StatusConflict, "Duplicate entry"},

	{service.ErrProfileEmailMissing, http.StatusBadRequest, "Provider profile has no email"},
	{service.ErrProfileProviderIDMissing, http.StatusBadRequest, "Provider profile has no id"},
	{service.ErrValidation, http.StatusBadRequest, "Validation failed"},
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{utils.ErrEmptyBody, http.StatusBadRequest, "Request body is empty"},

	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests. Please try again later."},
}

// validationErrors are reported to the client verbatim.
var validationErrors = []error{
	validators.ErrEmptyTitle,
	validators.ErrTitleTooLong,
	validators.ErrEmptyContent,
	validators.ErrContentTooLong,
	validators.ErrTooManyTags,
	validators.ErrInvalidTag,
	validators.ErrNoFieldsToUpdate,
	validators.ErrInvalidPage,
	validators.ErrInvalidLimit,
}

// statusFromError returns the HTTP status and public message for err.
// Unknown errors are 500.
func statusFromError(err error) (int, string) {
	for _, rule := range errorRules {
		if !errors.Is(err, rule.target) {
			continue
		}
		if rule.status == http.StatusBadRequest {
			for _, v := range validationErrors {
				if errors.Is(err, v) {
					return rule.status, v.Error()
				}
			}
		}
		return rule.status, rule.message
	}
	return http.StatusInternalServerError, internalServerErrorMessage
}

// writeError replies with the JSON error body for err. 5xx replies never
// carry the cause; it is logged instead.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = internalServerErrorMessage
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, status)
}
