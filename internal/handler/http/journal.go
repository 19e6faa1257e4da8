// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeJournalRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.JournalService.Create(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("error creating journal entry")
		http.Error(w, "error creating journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	record, err := h.services.JournalService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntry").Str("id", id).Msg("error getting journal entry")
		http.Error(w, "error getting journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	req, err := decodeJournalRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.JournalService.Update(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Str("id", id).Msg("error updating journal entry")
		http.Error(w, "error updating journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.JournalService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Str("id", id).Msg("error deleting journal entry")
		http.Error(w, "error deleting journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

// listEntries answers GET /api/entries. An absent tag parameter lists every
// record; a present one, even empty, filters by exact tag.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var filter models.ListFilter
	if values, ok := r.URL.Query()["tag"]; ok && len(values) > 0 {
		tag := values[0]
		filter.Tag = &tag
	}

	records, err := h.services.JournalService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error listing journal entries")
		http.Error(w, "error listing journal entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func decodeJournalRequest(r *http.Request) (models.JournalRequest, error) {
	var req models.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.JournalRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	return req, nil
}
