package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the internal user id
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - email          : the user's email
//
// Issuer, user id, duration and key are required. Returns an error if any of
// them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("notes", userID, email, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer, userID, email string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Algorithm pinned to HS256
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim presence
//
// Errors wrap the jwt/v5 sentinels (jwt.ErrTokenExpired,
// jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid, ...) so callers can
// classify them with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Claims, error) {
	claims := models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidSubject)
	}

	return claims, nil
}

// IsJWTExpired decodes tokenString without verifying its signature and
// reports whether its "exp" claim is at or before now.
//
// A token that cannot be decoded or has no "exp" claim is reported as not
// expired; full validation will reject it afterwards.
func IsJWTExpired(tokenString string, now time.Time) bool {
	claims := models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return !now.Before(claims.ExpiresAt.Time)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
