// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/moviemate/internal/config"
	"github.com/tomtom215/moviemate/internal/explain"
)

func TestParseDelimiter(t *testing.T) {
	tests := map[string]rune{"": 0, ",": ',', ";": ';', "|": '|', "tab": '\t', `\t`: '\t'}
	for in, want := range tests {
		if got := parseDelimiter(in); got != want {
			t.Errorf("parseDelimiter(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMiddlewareConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.RateLimitReqs = 7
	cfg.Security.RateLimitWindow = 30 * time.Second
	cfg.Security.CORSOrigins = []string{"https://moviemate.example"}

	mw := middlewareConfig(cfg)
	if mw.RateLimitRequests != 7 || mw.RateLimitWindow != 30*time.Second || mw.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", mw.RateLimitRequests, mw.RateLimitWindow, mw.RateLimitDisabled)
	}
	if len(mw.CORSAllowedOrigins) != 1 || mw.CORSAllowedOrigins[0] != "https://moviemate.example" {
		t.Errorf("origins = %v", mw.CORSAllowedOrigins)
	}
}

func TestNewExplainer_Strategies(t *testing.T) {
	cfg := &config.Config{}
	e, err := newExplainer(cfg, nil)
	if err != nil || e.Strategy() != explain.StrategyTemplate {
		t.Fatalf("default explainer = %v, %v", e, err)
	}

	cfg.Explain.Strategy = explain.StrategyGenerative
	cfg.Explain.Timeout = time.Second
	if e, err = newExplainer(cfg, nil); err != nil || e.Strategy() != explain.StrategyGenerative {
		t.Fatalf("generative explainer = %v, %v", e, err)
	}

	cfg.Explain.Strategy = "oracle"
	if _, err := newExplainer(cfg, nil); err == nil {
		t.Error("unknown strategy accepted")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	movies := filepath.Join(dir, "movies.csv")
	data := "movieId,title,genres\n1,Heat (1995),Action|Crime\n2,Amelie (2001),Comedy|Romance\n"
	if err := os.WriteFile(movies, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Catalog.MoviesPath = movies
	src, cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cat.Len())
	}
	if !src.Ready() {
		t.Error("source not ready after a successful load")
	}
	if again, _ := src.Catalog(context.Background()); again != cat {
		t.Error("source reloaded the catalog")
	}

	cfg.Catalog.MoviesPath = filepath.Join(dir, "missing.csv")
	if _, _, err := loadCatalog(context.Background(), cfg); err == nil {
		t.Error("missing movies file accepted")
	}
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	dir := t.TempDir()
	movies := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(movies, []byte("movieId,title,genres\n1,Heat (1995),Action\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	cfg.Catalog.MoviesPath = movies
	_, cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	cfg.Ranking = config.RankingConfig{GenreWeight: 0.5, TagWeight: 0.5, MaxSelections: 5, MaxTags: 5}
	if _, err := newEngine(cat, cfg); err != nil {
		t.Errorf("newEngine() error = %v", err)
	}
	cfg.Ranking.GenreWeight, cfg.Ranking.TagWeight = 0, 0
	if _, err := newEngine(cat, cfg); err == nil {
		t.Error("zero weights accepted")
	}
}
