// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in every session token.
//
// The subject ("sub") carries the internal user id; Email is a private claim.
// Issuer, IssuedAt and ExpiresAt come from [jwt.RegisteredClaims].
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Identity returns the authenticated identity described by the claims.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.Subject, Email: c.Email}
}

// Token is a freshly issued session token.
type Token struct {
	// Claims holds the claims that were signed into SignedString.
	Claims Claims

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the caller identity resolved from a verified token and
// carried through the request context.
type Identity struct {
	UserID string
	Email  string
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}
