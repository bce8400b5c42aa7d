package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
