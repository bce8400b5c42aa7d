// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExternalProfile is the verified identity handed back by the OAuth provider
// after a successful code exchange.
type ExternalProfile struct {
	// Provider names the identity provider, e.g. "google".
	Provider string

	// ProviderID is the provider-assigned subject identifier. Required.
	ProviderID string

	// Email is the provider-verified email address. Required.
	Email string

	GivenName  string
	FamilyName string
	Picture    string
}

// ResolveOutcome tells which branch the identity resolution took.
type ResolveOutcome string

const (
	// ResolveCreated means a new user was created for an unseen email.
	ResolveCreated ResolveOutcome = "created"
	// ResolveLinked means the provider id was attached to an existing user.
	ResolveLinked ResolveOutcome = "linked"
	// ResolveExisting means the user already had a provider id and was
	// returned unchanged.
	ResolveExisting ResolveOutcome = "existing"
)
