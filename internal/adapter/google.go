package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	googleProviderName = "google"

	defaultGoogleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultGoogleTokenURL    = "https://oauth2.googleapis.com/token"
	defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// googleOAuthProvider implements [OAuthProvider] for Google OAuth 2.0.
type googleOAuthProvider struct {
	client *utils.HTTPClient

	clientID     string
	clientSecret string
	redirectURL  string

	authURL     string
	tokenURL    string
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleOAuthProvider constructs the Google [OAuthProvider]. Endpoint URLs
// left empty in cfg default to Google's public endpoints; outbound calls are
// bounded by cfg.RequestTimeout.
func NewGoogleOAuthProvider(cfg config.OAuth, logger *logger.Logger) OAuthProvider {
	p := &googleOAuthProvider{
		client:       utils.NewHTTPClient(cfg.RequestTimeout),
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURL:  cfg.GoogleRedirectURL,
		authURL:      cfg.GoogleAuthURL,
		tokenURL:     cfg.GoogleTokenURL,
		userInfoURL:  cfg.GoogleUserInfoURL,
		logger:       logger,
	}

	if p.authURL == "" {
		p.authURL = defaultGoogleAuthURL
	}
	if p.tokenURL == "" {
		p.tokenURL = defaultGoogleTokenURL
	}
	if p.userInfoURL == "" {
		p.userInfoURL = defaultGoogleUserInfoURL
	}

	return p
}

func (g *googleOAuthProvider) Name() string {
	return googleProviderName
}

// GetLoginURL implements [OAuthProvider]. The requested scopes are
// "openid email profile".
func (g *googleOAuthProvider) GetLoginURL(state string) string {
	params := url.Values{
		"client_id":     {g.clientID},
		"redirect_uri":  {g.redirectURL},
		"response_type": {"code"},
		"scope":         {"openid email profile"},
		"state":         {state},
	}
	return g.authURL + "?" + params.Encode()
}

type googleTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// ExchangeCode implements [OAuthProvider]: it exchanges code for an access
// token and then fetches the user's profile with it.
func (g *googleOAuthProvider) ExchangeCode(ctx context.Context, code string) (models.ExternalProfile, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(code) == "" {
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrExchangeFailed, ErrEmptyCode)
	}

	accessToken, err := g.exchangeToken(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "googleOAuthProvider.ExchangeCode").Msg("failed to exchange authorization code")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	info, err := g.fetchUserInfo(ctx, accessToken)
	if err != nil {
		log.Err(err).Str("func", "googleOAuthProvider.ExchangeCode").Msg("failed to fetch user info")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	return models.ExternalProfile{
		Provider:   googleProviderName,
		ProviderID: info.Sub,
		Email:      info.Email,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
		Picture:    info.Picture,
	}, nil
}

func (g *googleOAuthProvider) exchangeToken(ctx context.Context, code string) (string, error) {
	var token googleTokenResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"redirect_uri":  g.redirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(g.tokenURL)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrInvalidProviderResponse)
	}

	return token.AccessToken, nil
}

func (g *googleOAuthProvider) fetchUserInfo(ctx context.Context, accessToken string) (googleUserInfo, error) {
	var info googleUserInfo

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(g.userInfoURL)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("user info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return googleUserInfo{}, fmt.Errorf("user info request: %w", err)
	}

	if info.Sub == "" {
		return googleUserInfo{}, fmt.Errorf("%w: empty sub", ErrInvalidProviderResponse)
	}
	if info.EmailVerified != nil && !*info.EmailVerified {
		return googleUserInfo{}, ErrEmailNotVerified
	}

	return info, nil
}
