// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/features"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
)

// Engine turns a selection into a ranked candidate list.
// It is safe for concurrent use.
type Engine struct {
	cfg    Config
	cat    *catalog.Catalog
	enc    *features.Encoder
	ranker *Ranker
	logger zerolog.Logger
}

// NewEngine creates a new ranking engine over an immutable catalog.
//
//nolint:gocritic // hugeParam: cfg is copied once at construction
func NewEngine(cat *catalog.Catalog, enc *features.Encoder, cfg Config) (*Engine, error) {
	if cat == nil || enc == nil {
		return nil, errors.New("catalog and encoder are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		cfg:    cfg,
		cat:    cat,
		enc:    enc,
		ranker: NewRanker(cat, enc, cfg.WithTags),
		logger: logging.WithComponent("recommend"),
	}, nil
}

// Catalog returns the catalog the engine ranks.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Config returns the ranking policy.
func (e *Engine) Config() Config { return e.cfg }

// Normalize trims, de-duplicates and caps a request the way Recommend sees it.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Normalize(req Request) Request {
	req.Titles = capUnique(req.Titles, e.cfg.MaxSelections, false)
	req.Tags = capUnique(req.Tags, e.cfg.MaxTags, true)
	return req
}

// Recommend builds the profile and ranks the catalog. It returns
// ErrNoProfile when no selected title resolves; no ranking is attempted in
// that case.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Ranking, error) {
	start := time.Now()
	req = e.Normalize(req)

	logger := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("session_id", logging.SessionIDFromContext(ctx)).
		Int("titles", len(req.Titles)).
		Int("tags", len(req.Tags)).
		Int("year_floor", req.YearFloor).
		Logger()

	profile, err := BuildProfile(e.cat, e.enc, req.Titles, req.Tags)
	if err != nil {
		metrics.RecordRanking(time.Since(start), 0, "no_profile")
		logger.Info().Strs("titles", req.Titles).Msg("selection resolved to no movies")
		return nil, err
	}

	for _, mismatch := range e.ranker.Align(profile) {
		var mm *features.EncodingMismatchError
		space := "unknown"
		if errors.As(mismatch, &mm) {
			space = mm.Space
		}
		metrics.RecordEncodingMismatch(space)
		logger.Warn().Err(mismatch).Msg("profile vector reindexed")
	}

	items, err := e.ranker.Rank(ctx, profile, req.YearFloor)
	if err != nil {
		metrics.RecordRanking(time.Since(start), 0, "error")
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	ranking := &Ranking{
		Items:       items,
		Weights:     e.ranker.WeightsFor(profile),
		YearFloor:   req.YearFloor,
		Selected:    profile.SelectedIDs(),
		Unresolved:  profile.Unresolved,
		UnknownTags: profile.UnknownTags,
		Duration:    time.Since(start),
	}
	metrics.RecordRanking(ranking.Duration, len(items), "ok")

	logger.Debug().
		Int("resolved", len(profile.Selected)).
		Int("unresolved", len(profile.Unresolved)).
		Int("tags_resolved", len(profile.TagIDs)).
		Int("candidates", len(items)).
		Dur("duration", ranking.Duration).
		Msg("ranking complete")

	return ranking, nil
}

// capUnique drops blanks and duplicates, keeping the first limit entries.
func capUnique(in []string, limit int, foldCase bool) []string {
	if len(in) == 0 || limit <= 0 {
		return nil
	}
	out := make([]string, 0, min(len(in), limit))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := s
		if foldCase {
			key = strings.ToLower(s)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
