// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/feedback"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/session"
)

// Deps are the components the handlers call.
type Deps struct {
	Catalog *catalog.Catalog
	// CatalogSource is optional; when set, readiness also requires its load
	// to have succeeded.
	CatalogSource *catalog.Source
	Sessions      *session.Controller
	// Posters is optional; without it browse returns placeholders.
	Posters session.PosterSource
	// Feedback is optional; without it the feedback endpoint answers 503.
	Feedback         feedback.Store
	DefaultYearFloor int
	Version          string
}

// Handler implements the HTTP endpoints.
type Handler struct {
	deps      Deps
	startTime time.Time
	logger    zerolog.Logger
}

// NewHandler validates deps.
//
//nolint:gocritic // hugeParam: deps read once at startup
func NewHandler(deps Deps) (*Handler, error) {
	if deps.Catalog == nil || deps.Sessions == nil {
		return nil, errors.New("api handler requires a catalog and a session controller")
	}
	return &Handler{deps: deps, startTime: time.Now(), logger: logging.WithComponent("api")}, nil
}
