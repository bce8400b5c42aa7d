package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 10 * time.Minute
	stateNonceSize  = 16
)

// googleLogin redirects the caller to the provider consent page. The state
// parameter is a random nonce signed with the state key; the same value is
// kept in an HttpOnly cookie and compared on the callback.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := h.newState()
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.services.AuthService.GetLoginURL(state), http.StatusFound)
}

// googleCallback completes the authorization code flow and returns a
// session token together with the caller's profile.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	if !h.verifyState(r, query.Get("state")) {
		writeError(w, r, ErrInvalidState)
		return
	}

	// the state is single use
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
	})

	response, err := h.services.AuthService.Login(ctx, query.Get("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("email", response.User.Email).Msg("user logged in")
	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) newState() (string, error) {
	nonce := make([]byte, stateNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	encoded := hex.EncodeToString(nonce)
	return encoded + "." + utils.HashString(encoded, h.stateSignKey), nil
}

func (h *Handler) verifyState(r *http.Request, state string) bool {
	if state == "" {
		return false
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value != state {
		return false
	}

	nonce, signature, ok := strings.Cut(state, ".")
	if !ok || nonce == "" {
		return false
	}

	return utils.VerifyHashString(nonce, signature, h.stateSignKey)
}
