// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by the provider callback after a successful login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

// NotesPage is a page of the caller's notes.
type NotesPage struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
	Pages int    `json:"pages"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}
