// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

const noteIDParam = "noteId"

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	query := r.URL.Query()
	pagination, err := validators.ParsePagination(query.Get("page"), query.Get("limit"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrValidation, err))
		return
	}

	page, err := h.services.NoteService.ListNotes(r.Context(), identity, pagination)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	var req models.CreateNoteRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), identity, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	var req models.UpdateNoteRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), identity, chi.URLParam(r, noteIDParam), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), identity, chi.URLParam(r, noteIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readJSON decodes the request body, reporting any decode failure as
// ErrInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
