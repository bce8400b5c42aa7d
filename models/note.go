// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a user-owned text document.
//
// Owner is assigned once at creation and is never changed afterwards.
type Note struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate is a partial update of a note. Only non-nil fields are written.
type NoteUpdate struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// IsEmpty reports whether the update carries no fields.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil
}
