// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

// Package tmdb looks up posters and plot overviews on The Movie Database.
//
// Every lookup degrades to an empty value: with no API key no request is
// made, and transport, status or decoding failures are logged and counted
// but never returned to callers. Successful searches are cached, including
// those with no match. Failed requests are not cached and retry on the next
// lookup.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemate/internal/cache"
	"github.com/tomtom215/moviemate/internal/extsvc"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
)

const (
	service = "tmdb"

	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.themoviedb.org"
	// DefaultImageBaseURL prefixes poster paths.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"

	// BrowsePlaceholder is shown in the selection grid when no poster exists.
	BrowsePlaceholder = "https://via.placeholder.com/300x450.png?text=No+Image"
	// RecommendationPlaceholder is shown on recommendation cards.
	RecommendationPlaceholder = "https://via.placeholder.com/500x750.png?text=No+Image"
)

var errUnexpectedStatus = errors.New("unexpected status")

// Config configures Client.
type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Timeout      time.Duration
	CacheSize    int
	CacheTTL     time.Duration
}

// Movie is the subset of a search result MovieMate uses.
type Movie struct {
	PosterURL string `json:"poster_url,omitempty"`
	Overview  string `json:"overview,omitempty"`
}

// Client queries TMDB through a rate limiter and circuit breaker.
type Client struct {
	cfg        Config
	guard      *extsvc.Guard
	httpClient *http.Client
	cache      *cache.LRU[string, Movie]
	logger     zerolog.Logger
}

// New creates a client. guard may be nil for an unlimited, default-breaker
// guard.
//
//nolint:gocritic // hugeParam: config copied once at construction
func New(cfg Config, guard *extsvc.Guard) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 2048
	}
	if guard == nil {
		guard = extsvc.NewGuard(service, nil, nil)
	}
	return &Client{
		cfg:        cfg,
		guard:      guard,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache.New[string, Movie](cfg.CacheSize, cfg.CacheTTL),
		logger:     logging.WithComponent("tmdb"),
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.cfg.APIKey != "" }

// PosterURL returns the poster for a cleaned title, or "".
func (c *Client) PosterURL(ctx context.Context, title string) string {
	return c.Lookup(ctx, title).PosterURL
}

// Overview returns the plot overview for a cleaned title, or "".
func (c *Client) Overview(ctx context.Context, title string) string {
	return c.Lookup(ctx, title).Overview
}

// Lookup returns the first search hit for title. Failures yield the zero
// Movie and are not cached, so a later call can retry.
func (c *Client) Lookup(ctx context.Context, title string) Movie {
	title = strings.TrimSpace(title)
	if !c.Enabled() || title == "" {
		return Movie{}
	}

	key := strings.ToLower(title)
	if m, ok := c.cache.Get(key); ok {
		metrics.RecordCacheLookup(service, true)
		return m
	}
	metrics.RecordCacheLookup(service, false)

	m, err := extsvc.Do(ctx, c.guard, "search_movie", func(ctx context.Context) (Movie, error) {
		return c.search(ctx, title)
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("title", title).Msg("TMDB lookup failed")
		return Movie{}
	}
	c.cache.Add(key, m)
	return m
}

// Warm looks up titles sequentially so later renders hit the cache.
func (c *Client) Warm(ctx context.Context, titles []string) int {
	found := 0
	for _, t := range titles {
		if ctx.Err() != nil {
			break
		}
		if c.Lookup(ctx, t).PosterURL != "" {
			found++
		}
	}
	return found
}

func (c *Client) search(ctx context.Context, title string) (Movie, error) {
	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("query", title)
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/3/search/movie?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return Movie{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The key is part of the URL; keep it out of logs.
		return Movie{}, fmt.Errorf("send request: %w", redact(err, c.cfg.APIKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Movie{}, &extsvc.Error{
			Service:    service,
			Op:         "search_movie",
			StatusCode: resp.StatusCode,
			Err:        errUnexpectedStatus,
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Movie{}, fmt.Errorf("decode response: %w", err)
	}
	if len(body.Results) == 0 {
		return Movie{}, nil
	}

	first := body.Results[0]
	m := Movie{Overview: strings.TrimSpace(first.Overview)}
	if first.PosterPath != "" {
		m.PosterURL = strings.TrimRight(c.cfg.ImageBaseURL, "/") + "/" + strings.TrimLeft(first.PosterPath, "/")
	}
	return m, nil
}

type searchResponse struct {
	Results []struct {
		Title      string `json:"title"`
		Overview   string `json:"overview"`
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "REDACTED"), err: err}
}
