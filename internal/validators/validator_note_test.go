// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string        { return &s }
func tagsPtr(t ...string) *[]string { return &t }

func validCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{"home"},
	}
}

func TestNewNoteValidator(t *testing.T) {
	v := NewNoteValidator()

	require.NotNil(t, v)
	assert.IsType(t, &NoteValidator{}, v)
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	err := NewNoteValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNoteValidator_CreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateNoteRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateNoteRequest) {}},
		{name: "no tags", mutate: func(r *models.CreateNoteRequest) { r.Tags = nil }},
		{name: "empty title", mutate: func(r *models.CreateNoteRequest) { r.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "blank title", mutate: func(r *models.CreateNoteRequest) { r.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "long title", mutate: func(r *models.CreateNoteRequest) { r.Title = strings.Repeat("t", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "title at limit counts runes", mutate: func(r *models.CreateNoteRequest) { r.Title = strings.Repeat("é", MaxTitleLength) }},
		{name: "empty content", mutate: func(r *models.CreateNoteRequest) { r.Content = "" }, wantErr: ErrEmptyContent},
		{name: "long content", mutate: func(r *models.CreateNoteRequest) { r.Content = strings.Repeat("c", MaxContentLength+1) }, wantErr: ErrContentTooLong},
		{name: "too many tags", mutate: func(r *models.CreateNoteRequest) { r.Tags = make([]string, MaxTags+1) }, wantErr: ErrTooManyTags},
		{name: "blank tag", mutate: func(r *models.CreateNoteRequest) { r.Tags = []string{"ok", " "} }, wantErr: ErrInvalidTag},
		{name: "long tag", mutate: func(r *models.CreateNoteRequest) { r.Tags = []string{strings.Repeat("x", MaxTagLength+1)} }, wantErr: ErrInvalidTag},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_CreateRequest_Pointer(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""

	err := NewNoteValidator().Validate(context.Background(), &req)

	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestNoteValidator_CreateRequest_FieldScoping(t *testing.T) {
	req := models.CreateNoteRequest{Title: "only title"}
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), req, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldContent), ErrEmptyContent)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "unknown"), ErrUnknownField)
}

func TestNoteValidator_UpdateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateNoteRequest
		wantErr error
	}{
		{name: "title only", req: models.UpdateNoteRequest{Title: strPtr("new")}},
		{name: "content only", req: models.UpdateNoteRequest{Content: strPtr("body")}},
		{name: "empty tags clears", req: models.UpdateNoteRequest{Tags: tagsPtr()}},
		{name: "nothing to update", req: models.UpdateNoteRequest{}, wantErr: ErrNoFieldsToUpdate},
		{name: "blank title", req: models.UpdateNoteRequest{Title: strPtr(" ")}, wantErr: ErrEmptyTitle},
		{name: "blank content", req: models.UpdateNoteRequest{Content: strPtr("")}, wantErr: ErrEmptyContent},
		{name: "bad tag", req: models.UpdateNoteRequest{Tags: tagsPtr("")}, wantErr: ErrInvalidTag},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_NoteID(t *testing.T) {
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), "0190c2a4-8a3e-7c1b-9f00-000000000001"))
	assert.NoError(t, v.Validate(context.Background(), "legacy-id", FieldNoteID))
	assert.ErrorIs(t, v.Validate(context.Background(), ""), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(context.Background(), strings.Repeat("a", 65)), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(context.Background(), "id", FieldTitle), ErrUnknownField)
}
