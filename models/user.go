// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a locally stored account. It is created on the first successful
// provider login for an unseen email and is never deleted by the server.
type User struct {
	// UserID is the opaque, stable internal identifier (UUIDv7).
	UserID string `json:"-"`

	// Email is unique and stored trimmed and lower-cased. It is the key used
	// to reconcile provider profiles with local accounts.
	Email string `json:"email"`

	// ProviderID is the identity-provider subject. It stays nil until the
	// account is linked and is never overwritten once set.
	ProviderID *string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasProviderID reports whether a provider identity is linked to the user.
func (u User) HasProviderID() bool {
	return u.ProviderID != nil && *u.ProviderID != ""
}

// Profile returns the public projection of the user returned to clients.
func (u User) Profile() UserProfile {
	return UserProfile{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the descriptive part of a user exposed through the API.
type UserProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture"`
}
