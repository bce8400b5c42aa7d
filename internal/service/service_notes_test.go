// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/security"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var notesTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestNoteSvc wires a noteService to a mocked repository through the real
// ownership authorizer, so a denied request can be checked for missing
// write calls.
func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller, ids ...string) (*noteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(ctrl)
	authorizer := NewOwnershipAuthorizer(repo, logger.Nop())

	svc := NewNoteService(repo, authorizer, security.NewNoteSanitizer(), &fixedIDs{ids: ids}, logger.Nop()).(*noteService)
	svc.now = func() time.Time { return notesTestNow }

	return svc, repo
}

// ── ListNotes ────────────────────────────────────────────────────────────────

func TestNoteService_ListNotes_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	page := make([]models.Note, 5)
	for i := range page {
		page[i] = models.Note{ID: fmt.Sprintf("note-%d", 7-i), Owner: alice.UserID}
	}
	repo.EXPECT().FindNotesByOwner(gomock.Any(), alice.UserID, 5, 5).Return(page, 12, nil)

	got, err := svc.ListNotes(context.Background(), alice, models.Pagination{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Len(t, got.Notes, 5)
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, 3, got.Pages)
}

func TestNoteService_ListNotes_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNotesByOwner(gomock.Any(), bob.UserID, 0, 10).Return(nil, 0, nil)

	got, err := svc.ListNotes(context.Background(), bob, models.Pagination{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, got.Notes)
	assert.Empty(t, got.Notes)
	assert.Equal(t, 0, got.Pages)
}

func TestNoteService_ListNotes_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	dbErr := errors.New("db down")

	repo.EXPECT().FindNotesByOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, dbErr)

	_, err := svc.ListNotes(context.Background(), alice, models.Pagination{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, dbErr)
}

// ── CreateNote ───────────────────────────────────────────────────────────────

func TestNoteService_CreateNote_OwnerIsCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl, "note-new")

	want := models.Note{
		ID:        "note-new",
		Title:     "Tom & Jerry",
		Content:   "<p>milk</p>",
		Tags:      []string{"home", "<go>"},
		Owner:     alice.UserID,
		CreatedAt: notesTestNow,
		UpdatedAt: notesTestNow,
	}
	repo.EXPECT().InsertNote(gomock.Any(), want).Return(want, nil)

	got, err := svc.CreateNote(context.Background(), alice, models.CreateNoteRequest{
		Title:   " Tom & Jerry ",
		Content: "<p>milk</p><script>x()</script>",
		Tags:    []string{" home ", "<go>"},
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_CreateNote_NilTagsStoredAsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl, "note-new")

	repo.EXPECT().InsertNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.NotNil(t, n.Tags)
			assert.Empty(t, n.Tags)
			return n, nil
		})

	_, err := svc.CreateNote(context.Background(), alice, models.CreateNoteRequest{Title: "t", Content: "c"})

	require.NoError(t, err)
}

func TestNoteService_CreateNote_PlainTextStoredVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl, "note-new")

	repo.EXPECT().InsertNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "<draft>", n.Title)
			assert.Equal(t, `a < b && "c"`, n.Content)
			return n, nil
		})

	_, err := svc.CreateNote(context.Background(), alice, models.CreateNoteRequest{
		Title:   "<draft>",
		Content: `a < b && "c"`,
	})

	require.NoError(t, err)
}

func TestNoteService_CreateNote_BlankTitleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestNoteSvc(t, ctrl, "note-new")

	_, err := svc.CreateNote(context.Background(), alice, models.CreateNoteRequest{
		Title:   " \t\n ",
		Content: "c",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

// ── GetNote ──────────────────────────────────────────────────────────────────

func TestNoteService_GetNote(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
		found    bool
		wantErr  error
	}{
		{name: "owner reads", identity: alice, found: true},
		{name: "other user forbidden", identity: bob, found: true, wantErr: ErrForbiddenAccess},
		{name: "missing note", identity: alice, found: false, wantErr: ErrNoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestNoteSvc(t, ctrl)

			if tt.found {
				repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
			} else {
				repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(models.Note{}, store.ErrNoteNotFound)
			}

			got, err := svc.GetNote(context.Background(), tt.identity, "note-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Note{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, aliceNote(), got)
		})
	}
}

// ── UpdateNote ───────────────────────────────────────────────────────────────

func TestNoteService_UpdateNote_OwnerUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	title := "  New title "
	updated := aliceNote()
	updated.Title = "New title"

	gomock.InOrder(
		repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil),
		repo.EXPECT().UpdateNoteByID(gomock.Any(), "note-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u models.NoteUpdate) (models.Note, error) {
				require.NotNil(t, u.Title)
				assert.Equal(t, "New title", *u.Title)
				assert.Nil(t, u.Content)
				assert.Nil(t, u.Tags)
				return updated, nil
			}),
	)

	got, err := svc.UpdateNote(context.Background(), alice, "note-1", models.UpdateNoteRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.Owner)
	assert.Equal(t, "New title", got.Title)
}

func TestNoteService_UpdateNote_OtherUserForbiddenWithoutWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
	repo.EXPECT().UpdateNoteByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	title := "hijacked"
	_, err := svc.UpdateNote(context.Background(), bob, "note-1", models.UpdateNoteRequest{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrForbiddenUpdate)
}

func TestNoteService_UpdateNote_MissingNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNoteByID(gomock.Any(), "ghost").Return(models.Note{}, store.ErrNoteNotFound)

	title := "x"
	_, err := svc.UpdateNote(context.Background(), alice, "ghost", models.UpdateNoteRequest{Title: &title})

	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestNoteService_UpdateNote_DeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
	repo.EXPECT().UpdateNoteByID(gomock.Any(), "note-1", gomock.Any()).Return(models.Note{}, store.ErrNoteNotFound)

	content := "body"
	_, err := svc.UpdateNote(context.Background(), alice, "note-1", models.UpdateNoteRequest{Content: &content})

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_UpdateNote_TagsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
	repo.EXPECT().UpdateNoteByID(gomock.Any(), "note-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, u.Tags)
			assert.Equal(t, []string{}, *u.Tags)
			return aliceNote(), nil
		})

	tags := []string{"   "}
	_, err := svc.UpdateNote(context.Background(), alice, "note-1", models.UpdateNoteRequest{Tags: &tags})

	require.NoError(t, err)
}

// ── DeleteNote ───────────────────────────────────────────────────────────────

func TestNoteService_DeleteNote_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	gomock.InOrder(
		repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil),
		repo.EXPECT().DeleteNoteByID(gomock.Any(), "note-1").Return(nil),
	)

	assert.NoError(t, svc.DeleteNote(context.Background(), alice, "note-1"))
}

func TestNoteService_DeleteNote_OtherUserForbiddenWithoutWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
	repo.EXPECT().DeleteNoteByID(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteNote(context.Background(), bob, "note-1")

	assert.ErrorIs(t, err, ErrForbiddenDelete)
}

func TestNoteService_DeleteNote_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	dbErr := errors.New("db down")

	repo.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(aliceNote(), nil)
	repo.EXPECT().DeleteNoteByID(gomock.Any(), "note-1").Return(dbErr)

	err := svc.DeleteNote(context.Background(), alice, "note-1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}

// ── scenario ─────────────────────────────────────────────────────────────────

func TestNoteService_CreateThenUpdateAsOtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl, "note-a")

	var stored models.Note
	repo.EXPECT().InsertNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			stored = n
			return n, nil
		})
	repo.EXPECT().FindNoteByID(gomock.Any(), "note-a").DoAndReturn(
		func(context.Context, string) (models.Note, error) { return stored, nil }).Times(2)

	created, err := svc.CreateNote(context.Background(), alice, models.CreateNoteRequest{Title: "A", Content: "a"})
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, created.Owner)

	title := "B"
	_, err = svc.UpdateNote(context.Background(), bob, created.ID, models.UpdateNoteRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbiddenUpdate)

	got, err := svc.GetNote(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}
