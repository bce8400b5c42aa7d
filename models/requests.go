// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateNoteRequest is the body of PUT /api/notes/{noteId}.
// Absent fields are left untouched.
type UpdateNoteRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// ToNoteUpdate converts the request into a store-level partial update.
func (r UpdateNoteRequest) ToNoteUpdate() NoteUpdate {
	return NoteUpdate{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
	}
}

// Default pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination holds the page/limit query of GET /api/notes.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the zero-based offset of the first item of the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns the number of pages needed to hold total items.
func (p Pagination) Pages(total int) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
