// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moviemate/internal/catalog"
)

// LiveStatus is the liveness payload.
type LiveStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version,omitempty"`
	Uptime  float64 `json:"uptime_seconds"`
}

// ReadyStatus is the readiness payload.
type ReadyStatus struct {
	Status   string        `json:"status"`
	Catalog  catalog.Stats `json:"catalog"`
	Feedback bool          `json:"feedback_enabled"`
}

// HealthLive answers as long as the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Status:  "alive",
		Version: h.deps.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports catalog statistics. It fails until the catalog source
// has loaded and while the working catalog is empty.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if src := h.deps.CatalogSource; src != nil && !src.Ready() {
		rw.ServiceUnavailable("Catalog is not loaded")
		return
	}
	stats := h.deps.Catalog.Stats()
	if h.deps.Catalog.Len() == 0 {
		rw.ServiceUnavailable("Catalog is empty")
		return
	}
	rw.Success(ReadyStatus{Status: "ready", Catalog: stats, Feedback: h.deps.Feedback != nil})
}
