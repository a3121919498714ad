// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moviemate/internal/feedback"
	"github.com/tomtom215/moviemate/internal/session"
	"github.com/tomtom215/moviemate/internal/validation"
)

// CreateSession starts a session in the selecting phase.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	view, err := h.deps.Sessions.Start(r.Context())
	if err != nil {
		respondErr(rw, err, nil)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+view.SessionID)
	rw.Created(view)
}

// GetSession renders the current view.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	view, err := h.deps.Sessions.Render(r.Context(), chi.URLParam(r, "id"))
	respondView(rw, view, err)
}

// UpdateSelection replaces the selection. A missing year_floor keeps the
// session's current floor.
func (h *Handler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	var req SelectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(rw, err, nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondErr(rw, verr, nil)
		return
	}

	sel := session.Selection{Titles: req.Titles, Tags: req.Tags}
	var opts []session.SelectionOption
	if req.YearFloor != nil {
		sel.YearFloor = *req.YearFloor
	} else {
		opts = append(opts, session.KeepYearFloor())
	}

	view, err := h.deps.Sessions.UpdateSelection(r.Context(), id, sel, opts...)
	respondView(rw, view, err)
}

// LoadMore reveals the next page of recommendations.
func (h *Handler) LoadMore(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	view, err := h.deps.Sessions.LoadMore(r.Context(), chi.URLParam(r, "id"))
	respondView(rw, view, err)
}

// DeleteSession ends a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.deps.Sessions.End(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(rw, err, nil)
		return
	}
	rw.NoContent()
}

// SubmitFeedback appends a survey record that snapshots the session's
// current selection and reveal count.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.deps.Feedback == nil {
		respondErr(rw, errFeedbackDisabled, nil)
		return
	}

	var req FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(rw, err, nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondErr(rw, verr, nil)
		return
	}

	s, err := h.deps.Sessions.Store().Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(rw, err, nil)
		return
	}

	rec := &feedback.Record{
		SessionID:    s.ID,
		Titles:       s.Selection.Titles,
		Tags:         s.Selection.Tags,
		YearFloor:    s.Selection.YearFloor,
		Fingerprint:  s.Fingerprint,
		Revealed:     s.Reveal,
		Satisfaction: req.Satisfaction,
		Comment:      req.Comment,
		Answers:      req.Answers,
	}
	if err := h.deps.Feedback.Append(r.Context(), rec); err != nil {
		respondErr(rw, err, nil)
		return
	}
	h.logger.Info().Str("session_id", s.ID).Int("satisfaction", rec.Satisfaction).Msg("feedback received")
	rw.Created(rec)
}

func respondView(rw *ResponseWriter, view *session.View, err error) {
	if err != nil {
		respondErr(rw, err, view)
		return
	}
	rw.Success(view)
}
