// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/explain"
	"github.com/tomtom215/moviemate/internal/features"
	"github.com/tomtom215/moviemate/internal/feedback"
	"github.com/tomtom215/moviemate/internal/recommend"
	"github.com/tomtom215/moviemate/internal/session"
)

func apiCatalog() *catalog.Catalog {
	movies := []catalog.Movie{
		{ID: 1, Title: "Heat (1995)", Year: 1995, Genres: []string{"Action", "Crime"}},
		{ID: 2, Title: "The Matrix (1999)", Year: 1999, Genres: []string{"Action", "Sci-Fi"}},
		{ID: 3, Title: "Memento (2000)", Year: 2000, Genres: []string{"Mystery", "Thriller"}},
		{ID: 4, Title: "Amelie (2001)", Year: 2001, Genres: []string{"Comedy", "Romance"}},
		{ID: 5, Title: "Collateral (2004)", Year: 2004, Genres: []string{"Action", "Crime"}},
		{ID: 6, Title: "Inception (2010)", Year: 2010, Genres: []string{"Action", "Sci-Fi"}},
		{ID: 7, Title: "Drive (2011)", Year: 2011, Genres: []string{"Crime", "Drama"}},
		{ID: 8, Title: "Her (2013)", Year: 2013, Genres: []string{"Romance", "Sci-Fi"}},
		{ID: 9, Title: "Sicario (2015)", Year: 2015, Genres: []string{"Action", "Crime"}},
		{ID: 10, Title: "Arrival (2016)", Year: 2016, Genres: []string{"Drama", "Sci-Fi"}},
		{ID: 11, Title: "Tenet (2020)", Year: 2020, Genres: []string{"Action", "Sci-Fi"}},
	}
	tags := []catalog.Tag{{ID: 1, Name: "heist"}, {ID: 2, Name: "time travel"}}
	scores := []catalog.TagScore{
		{MovieID: 1, TagID: 1, Relevance: 0.9},
		{MovieID: 11, TagID: 2, Relevance: 0.8},
	}
	return catalog.New(movies, tags, scores, nil)
}

var fivePicks = []string{"The Matrix (1999)", "Memento (2000)", "Amelie (2001)", "Collateral (2004)", "Heat (1995)"}

type stubExplainer struct{}

func (stubExplainer) Explain(_ context.Context, c explain.Candidate) string {
	return fmt.Sprintf("Because you liked similar %v.", c.Genres)
}
func (stubExplainer) Strategy() string { return "stub" }

type stubPosters map[string]string

func (p stubPosters) PosterURL(_ context.Context, title string) string { return p[title] }

type testServer struct {
	handler  http.Handler
	store    *session.MemoryStore
	feedback *feedback.SQLiteStore
}

type serverOption func(*Deps, *ChiMiddlewareConfig)

func withoutFeedback() serverOption {
	return func(d *Deps, _ *ChiMiddlewareConfig) { d.Feedback = nil }
}

func withRateLimit(n int) serverOption {
	return func(_ *Deps, c *ChiMiddlewareConfig) {
		c.RateLimitRequests = n
		c.RateLimitDisabled = false
	}
}

func withCatalogSource(src *catalog.Source) serverOption {
	return func(d *Deps, _ *ChiMiddlewareConfig) { d.CatalogSource = src }
}

func withPosters(p session.PosterSource) serverOption {
	return func(d *Deps, _ *ChiMiddlewareConfig) { d.Posters = p }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	cat := apiCatalog()
	engine, err := recommend.NewEngine(cat, features.NewEncoder(cat), recommend.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	store := session.NewMemoryStore()
	sopts := session.DefaultOptions()
	ctrl, err := session.NewController(engine, stubExplainer{}, nil, store, sopts)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	fb, err := feedback.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = fb.Close() })

	deps := Deps{
		Catalog:          cat,
		Sessions:         ctrl,
		Feedback:         fb,
		DefaultYearFloor: 1999,
		Version:          "test",
	}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	for _, o := range opts {
		o(&deps, mwCfg)
	}

	h, err := NewHandler(deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return &testServer{
		handler:  NewRouter(h, NewChiMiddleware(mwCfg), 0).SetupChi(),
		store:    store,
		feedback: fb,
	}
}

// envelope mirrors APIResponse with raw data for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent && rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode data: %v\nraw: %s", err, env.Data)
	}
	return v
}

// startRanked creates a session and selects the five picks.
func (s *testServer) startRanked(t *testing.T) session.View {
	t.Helper()
	rec, env := s.do(t, http.MethodPost, "/api/v1/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[session.View](t, env)

	rec, env = s.do(t, http.MethodPut, "/api/v1/sessions/"+created.SessionID+"/selection",
		map[string]any{"titles": fivePicks})
	if rec.Code != http.StatusOK {
		t.Fatalf("update selection status = %d: %s", rec.Code, rec.Body.String())
	}
	return decodeData[session.View](t, env)
}
