// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package main

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/moviemate/internal/api"
	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/config"
	"github.com/tomtom215/moviemate/internal/explain"
	"github.com/tomtom215/moviemate/internal/extsvc"
	"github.com/tomtom215/moviemate/internal/features"
	"github.com/tomtom215/moviemate/internal/feedback"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/recommend"
	"github.com/tomtom215/moviemate/internal/session"
	"github.com/tomtom215/moviemate/internal/tmdb"
)

// loadCatalog reads the datasets once. A load failure is fatal to startup.
// The returned source backs the readiness probe.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Source, *catalog.Catalog, error) {
	loader := catalog.NewLoader(catalog.Config{
		MoviesPath:     cfg.Catalog.MoviesPath,
		RatingsPath:    cfg.Catalog.RatingsPath,
		TagsPath:       cfg.Catalog.TagsPath,
		TagScoresPath:  cfg.Catalog.TagScoresPath,
		Delimiter:      parseDelimiter(cfg.Catalog.Delimiter),
		QualityGate:    cfg.Catalog.QualityGate,
		MinAvgRating:   cfg.Catalog.MinAvgRating,
		MinRatingCount: cfg.Catalog.MinRatingCount,
		FilterExpr:     cfg.Catalog.FilterExpr,
	})
	src := catalog.NewSource(loader.Load)
	cat, err := src.Catalog(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return src, cat, nil
}

// parseDelimiter accepts a single character or "tab". Empty sniffs.
func parseDelimiter(s string) rune {
	switch s {
	case "":
		return 0
	case "tab", `\t`:
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func newEngine(cat *catalog.Catalog, cfg *config.Config) (*recommend.Engine, error) {
	rc := recommend.DefaultConfig()
	rc.WithTags = recommend.Weights{Genre: cfg.Ranking.GenreWeight, Tag: cfg.Ranking.TagWeight}
	rc.MaxSelections = cfg.Ranking.MaxSelections
	rc.MaxTags = cfg.Ranking.MaxTags

	enc := features.NewEncoder(cat)
	engine, err := recommend.NewEngine(cat, enc, rc)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	logging.Info().
		Int("genres", enc.Genres.Space().Len()).
		Int("tags", enc.Tags.Len()).
		Float64("genre_weight", rc.WithTags.Genre).
		Float64("tag_weight", rc.WithTags.Tag).
		Msg("Recommendation engine ready")
	return engine, nil
}

// newTMDBClient returns nil when no API key is configured.
func newTMDBClient(cfg *config.Config) *tmdb.Client {
	if cfg.TMDB.APIKey == "" {
		logging.Info().Msg("TMDB lookups disabled (no API key); placeholders will be used")
		return nil
	}
	guard := extsvc.NewGuard("tmdb",
		extsvc.NewLimiter(cfg.TMDB.RequestsPerSecond, cfg.TMDB.Burst),
		extsvc.NewBreaker("tmdb", extsvc.DefaultBreakerSettings()))
	return tmdb.New(tmdb.Config{
		APIKey:       cfg.TMDB.APIKey,
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Timeout:      cfg.TMDB.Timeout,
		CacheSize:    cfg.TMDB.CacheSize,
		CacheTTL:     cfg.TMDB.CacheTTL,
	}, guard)
}

// warmPageSize matches the default browse page.
const warmPageSize = 50

// warmPosters prefetches posters for the first browse page in the
// background so the selection grid renders from cache.
func warmPosters(ctx context.Context, client *tmdb.Client, cat *catalog.Catalog, yearFloor int) {
	if client == nil {
		return
	}
	page := cat.Browse(catalog.BrowseQuery{YearFrom: yearFloor, Limit: warmPageSize})
	titles := make([]string, len(page.Movies))
	for i := range page.Movies {
		titles[i] = catalog.CleanTitle(page.Movies[i].Title)
	}
	go func() {
		found := client.Warm(ctx, titles)
		logging.Info().Int("requested", len(titles)).Int("found", found).Msg("Poster cache warmed")
	}()
}

// posterSource avoids handing a typed nil to interface consumers.
func posterSource(c *tmdb.Client) session.PosterSource {
	if c == nil {
		return nil
	}
	return c
}

func newExplainer(cfg *config.Config, overviews *tmdb.Client) (explain.Explainer, error) {
	var completer explain.Completer
	if cfg.Explain.Strategy == explain.StrategyGenerative {
		oc := cfg.Explain.OpenAI
		guard := extsvc.NewGuard("openai",
			extsvc.NewLimiter(oc.RequestsPerSecond, oc.Burst),
			extsvc.NewBreaker("openai", extsvc.DefaultBreakerSettings()))
		completer = explain.NewOpenAIClient(explain.OpenAIConfig{
			BaseURL:     oc.BaseURL,
			APIKey:      oc.APIKey,
			Model:       oc.Model,
			Temperature: oc.Temperature,
			MaxTokens:   oc.MaxTokens,
			Timeout:     cfg.Explain.Timeout,
		}, guard)
	}

	var ov explain.OverviewSource
	if overviews != nil {
		ov = overviews
	}
	e, err := explain.New(explain.Config{
		Strategy:    cfg.Explain.Strategy,
		PhrasesPath: cfg.Explain.PhrasesPath,
		Seed:        cfg.Explain.Seed,
		Timeout:     cfg.Explain.Timeout,
	}, completer, ov)
	if err != nil {
		return nil, fmt.Errorf("create explainer: %w", err)
	}
	logging.Info().Str("strategy", e.Strategy()).Msg("Explainer ready")
	return e, nil
}

func openFeedback(ctx context.Context, cfg *config.Config) (*feedback.SQLiteStore, error) {
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	fb, err := feedback.OpenSQLite(openCtx, cfg.Feedback.Path)
	if err != nil {
		return nil, fmt.Errorf("open feedback store: %w", err)
	}
	logging.Info().Str("path", cfg.Feedback.Path).Msg("Feedback store ready")
	return fb, nil
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	if len(cfg.Security.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	if cfg.Security.RateLimitReqs > 0 {
		mw.RateLimitRequests = cfg.Security.RateLimitReqs
	}
	if cfg.Security.RateLimitWindow > 0 {
		mw.RateLimitWindow = cfg.Security.RateLimitWindow
	}
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}
