// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MyungJiwoo/career-log/internal/app"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/go-chi/chi/v5"
)

// authorID returns the caller set by the auth middleware.
func authorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccessToken)
	}
	return userID, ok
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQuery, name)
	}
	return v, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) listAppliedJobs(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	page, err := intQuery(r, "page")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AppliedJobService.ListAppliedJobs(r.Context(), author, r.URL.Query().Get("progress"), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createAppliedJob(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	var request models.CreateAppliedJobRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.AppliedJobService.CreateAppliedJob(r.Context(), author, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusCreated)
}

func (h *Handler) getAppliedJob(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	job, err := h.services.AppliedJobService.GetAppliedJob(r.Context(), author, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateAppliedJob(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	var request models.UpdateAppliedJobRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.AppliedJobService.UpdateAppliedJob(r.Context(), author, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateStageStatus(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	var request models.StageStatusUpdateRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.AppliedJobService.UpdateStageStatus(r.Context(), author, chi.URLParam(r, "jobId"), chi.URLParam(r, "stageId"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) deleteAppliedJob(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	if err := h.services.AppliedJobService.DeleteAppliedJob(r.Context(), author, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgAppliedJobDeleted, http.StatusOK)
}

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	author, ok := authorID(w, r)
	if !ok {
		return
	}

	stats, err := h.services.StatisticsService.Statistics(r.Context(), author)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
