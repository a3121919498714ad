// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/session"
	"github.com/tomtom215/moviemate/internal/tmdb"
	"github.com/tomtom215/moviemate/internal/validation"
)

const (
	defaultBrowseLimit = 50
	posterConcurrency  = 8
)

// BrowseMovie is one row of the selection grid.
type BrowseMovie struct {
	catalog.Movie
	Selected  bool   `json:"selected"`
	PosterURL string `json:"poster_url,omitempty"`
}

// Movies lists the catalog for the selection screen: year floor, literal
// case-insensitive title search, title order, offset paging. With
// posters=1 each row carries a poster URL or the browse placeholder.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := h.parseBrowse(r)
	if err != nil {
		respondErr(rw, err, nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondErr(rw, verr, nil)
		return
	}

	res := h.deps.Catalog.Browse(catalog.BrowseQuery{
		Query:    req.Query,
		YearFrom: req.YearFrom,
		Offset:   req.Offset,
		Limit:    req.Limit,
	})

	selected, err := h.selectedTitles(r, req.SessionID)
	if err != nil {
		respondErr(rw, err, nil)
		return
	}

	rows := make([]BrowseMovie, len(res.Movies))
	for i := range res.Movies {
		rows[i].Movie = res.Movies[i]
		rows[i].Selected = slices.Contains(selected, res.Movies[i].Title)
	}
	if req.Posters {
		if err := h.attachPosters(r, rows); err != nil {
			respondErr(rw, err, nil)
			return
		}
	}

	rw.SuccessWithPagination(rows, &PaginationMeta{
		Total:   res.Total,
		Count:   len(rows),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: req.Offset+len(rows) < res.Total,
	})
}

func (h *Handler) parseBrowse(r *http.Request) (BrowseRequest, error) {
	req := BrowseRequest{
		Query:     strings.TrimSpace(r.URL.Query().Get("q")),
		SessionID: r.URL.Query().Get("session_id"),
	}
	var err error
	if req.YearFrom, err = getIntParam(r, "year_from", h.deps.DefaultYearFloor); err != nil {
		return req, err
	}
	if req.Offset, err = getIntParam(r, "offset", 0); err != nil {
		return req, err
	}
	if req.Limit, err = getIntParam(r, "limit", defaultBrowseLimit); err != nil {
		return req, err
	}
	req.Posters, err = getBoolParam(r, "posters")
	return req, err
}

// selectedTitles returns the titles chosen in sessionID. An unknown session
// is not an error here; nothing is marked.
func (h *Handler) selectedTitles(r *http.Request, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, nil
	}
	s, err := h.deps.Sessions.Store().Get(r.Context(), sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Selection.Titles, nil
}

func (h *Handler) attachPosters(r *http.Request, rows []BrowseMovie) error {
	if h.deps.Posters == nil {
		for i := range rows {
			rows[i].PosterURL = tmdb.BrowsePlaceholder
		}
		return nil
	}
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(posterConcurrency)
	for i := range rows {
		g.Go(func() error {
			url := h.deps.Posters.PosterURL(ctx, catalog.CleanTitle(rows[i].Title))
			if url == "" {
				url = tmdb.BrowsePlaceholder
			}
			rows[i].PosterURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return r.Context().Err()
}

// Tags returns the tag vocabulary in id order. An empty list means tag
// weighting is unavailable.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	tags := h.deps.Catalog.Tags()
	if tags == nil {
		tags = []catalog.Tag{}
	}
	NewResponseWriter(w, r).SuccessWithPagination(tags, &PaginationMeta{Total: len(tags), Count: len(tags)})
}
