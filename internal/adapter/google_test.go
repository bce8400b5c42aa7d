// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// fakeGoogle serves the token and userinfo endpoints.
type fakeGoogle struct {
	tokenStatus    int
	tokenBody      string
	userInfoStatus int
	userInfoBody   string

	gotForm   url.Values
	gotBearer string
}

func (f *fakeGoogle) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		f.gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.tokenStatus)
		_, _ = w.Write([]byte(f.tokenBody))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		f.gotBearer = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.userInfoStatus)
		_, _ = w.Write([]byte(f.userInfoBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srvURL string) OAuthProvider {
	return NewGoogleOAuthProvider(config.OAuth{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:8080/api/auth/google/callback",
		GoogleAuthURL:      srvURL + "/auth",
		GoogleTokenURL:     srvURL + "/token",
		GoogleUserInfoURL:  srvURL + "/userinfo",
		RequestTimeout:     time.Second,
	}, logger.Nop())
}

func TestGoogle_GetLoginURL(t *testing.T) {
	p := newTestProvider("http://idp.local")

	raw := p.GetLoginURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "idp.local", u.Host)
	assert.Equal(t, "/auth", u.Path)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "http://localhost:8080/api/auth/google/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "email")
	assert.Equal(t, "google", p.Name())
}

func TestGoogle_DefaultEndpoints(t *testing.T) {
	p := NewGoogleOAuthProvider(config.OAuth{GoogleClientID: "id"}, logger.Nop()).(*googleOAuthProvider)

	assert.Equal(t, defaultGoogleAuthURL, p.authURL)
	assert.Equal(t, defaultGoogleTokenURL, p.tokenURL)
	assert.Equal(t, defaultGoogleUserInfoURL, p.userInfoURL)
}

func TestGoogle_ExchangeCode_Success(t *testing.T) {
	fake := &fakeGoogle{
		tokenStatus:    http.StatusOK,
		tokenBody:      `{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`,
		userInfoStatus: http.StatusOK,
		userInfoBody:   `{"sub":"g-42","email":"Ann@Example.com","email_verified":true,"given_name":"Ann","family_name":"Lee","picture":"http://pic"}`,
	}
	srv := fake.server(t)

	profile, err := newTestProvider(srv.URL).ExchangeCode(context.Background(), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "google", profile.Provider)
	assert.Equal(t, "g-42", profile.ProviderID)
	assert.Equal(t, "Ann@Example.com", profile.Email)
	assert.Equal(t, "Ann", profile.GivenName)
	assert.Equal(t, "Lee", profile.FamilyName)
	assert.Equal(t, "http://pic", profile.Picture)

	assert.Equal(t, "code-1", fake.gotForm.Get("code"))
	assert.Equal(t, "authorization_code", fake.gotForm.Get("grant_type"))
	assert.Equal(t, "client-secret", fake.gotForm.Get("client_secret"))
	assert.Equal(t, "Bearer at-1", fake.gotBearer)
}

func TestGoogle_ExchangeCode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fake    fakeGoogle
		wantErr error
	}{
		{
			name:    "token endpoint rejects code",
			fake:    fakeGoogle{tokenStatus: http.StatusBadRequest, tokenBody: `{"error":"invalid_grant"}`},
			wantErr: ErrBadRequest,
		},
		{
			name:    "empty access token",
			fake:    fakeGoogle{tokenStatus: http.StatusOK, tokenBody: `{}`},
			wantErr: ErrInvalidProviderResponse,
		},
		{
			name: "userinfo unauthorized",
			fake: fakeGoogle{
				tokenStatus:    http.StatusOK,
				tokenBody:      `{"access_token":"at"}`,
				userInfoStatus: http.StatusUnauthorized,
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "missing sub",
			fake: fakeGoogle{
				tokenStatus:    http.StatusOK,
				tokenBody:      `{"access_token":"at"}`,
				userInfoStatus: http.StatusOK,
				userInfoBody:   `{"email":"a@x.io"}`,
			},
			wantErr: ErrInvalidProviderResponse,
		},
		{
			name: "unverified email",
			fake: fakeGoogle{
				tokenStatus:    http.StatusOK,
				tokenBody:      `{"access_token":"at"}`,
				userInfoStatus: http.StatusOK,
				userInfoBody:   `{"sub":"g","email":"a@x.io","email_verified":false}`,
			},
			wantErr: ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := tt.fake
			srv := fake.server(t)

			_, err := newTestProvider(srv.URL).ExchangeCode(context.Background(), "code")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExchangeFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoogle_ExchangeCode_EmptyCode(t *testing.T) {
	_, err := newTestProvider("http://unused").ExchangeCode(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrExchangeFailed)
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestGoogle_ExchangeCode_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srvURL := srv.URL
	srv.Close()

	_, err := newTestProvider(srvURL).ExchangeCode(context.Background(), "code")

	assert.ErrorIs(t, err, ErrExchangeFailed)
}
