// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateRanking,
		c.validatePagination,
		c.validateExplain,
		c.validateTMDB,
		c.validateSession,
		c.validateFeedback,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.HandlerTimeout <= 0 {
		return fmt.Errorf("HANDLER_TIMEOUT must be positive, got %v", c.Server.HandlerTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Catalog.TagScoresPath != "" && c.Catalog.TagsPath == "" {
		return fmt.Errorf("TAGS_PATH is required when TAG_SCORES_PATH is set")
	}
	switch c.Catalog.Delimiter {
	case "", ",", ";", "\t", "|":
	default:
		return fmt.Errorf("CATALOG_DELIMITER must be one of , ; | or tab, got %q", c.Catalog.Delimiter)
	}
	if c.Catalog.MinAvgRating < 0 || c.Catalog.MinAvgRating > 5 {
		return fmt.Errorf("CATALOG_MIN_AVG_RATING must be between 0 and 5, got %.2f", c.Catalog.MinAvgRating)
	}
	if c.Catalog.MinRatingCount < 0 {
		return fmt.Errorf("CATALOG_MIN_RATING_COUNT must be non-negative, got %d", c.Catalog.MinRatingCount)
	}
	return nil
}

func (c *Config) validateRanking() error {
	r := c.Ranking
	if r.GenreWeight < 0 || r.GenreWeight > 1 {
		return fmt.Errorf("RANKING_GENRE_WEIGHT must be between 0 and 1, got %.2f", r.GenreWeight)
	}
	if r.TagWeight < 0 || r.TagWeight > 1 {
		return fmt.Errorf("RANKING_TAG_WEIGHT must be between 0 and 1, got %.2f", r.TagWeight)
	}
	if r.GenreWeight+r.TagWeight == 0 {
		return fmt.Errorf("RANKING_GENRE_WEIGHT and RANKING_TAG_WEIGHT cannot both be 0")
	}
	if r.DefaultYearFloor < 0 {
		return fmt.Errorf("DEFAULT_YEAR_FLOOR must be non-negative, got %d", r.DefaultYearFloor)
	}
	if r.MaxSelections < 1 {
		return fmt.Errorf("RANKING_MAX_SELECTIONS must be at least 1, got %d", r.MaxSelections)
	}
	if r.MaxTags < 0 {
		return fmt.Errorf("RANKING_MAX_TAGS must be non-negative, got %d", r.MaxTags)
	}
	return nil
}

func (c *Config) validatePagination() error {
	if c.Pagination.Initial < 1 {
		return fmt.Errorf("PAGINATION_INITIAL must be at least 1, got %d", c.Pagination.Initial)
	}
	if c.Pagination.Step < 1 {
		return fmt.Errorf("PAGINATION_STEP must be at least 1, got %d", c.Pagination.Step)
	}
	return nil
}

func (c *Config) validateExplain() error {
	switch c.Explain.Strategy {
	case "template":
		return nil
	case "generative":
	default:
		return fmt.Errorf("EXPLAIN_STRATEGY must be template or generative, got %q", c.Explain.Strategy)
	}

	o := c.Explain.OpenAI
	if o.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when EXPLAIN_STRATEGY=generative")
	}
	if err := validateHTTPURL(o.BaseURL, "OPENAI_BASE_URL"); err != nil {
		return err
	}
	if o.Model == "" {
		return fmt.Errorf("OPENAI_MODEL is required when EXPLAIN_STRATEGY=generative")
	}
	if o.Temperature < 0 || o.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %.2f", o.Temperature)
	}
	if o.MaxTokens < 1 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", o.MaxTokens)
	}
	if c.Explain.Timeout <= 0 {
		return fmt.Errorf("EXPLAIN_TIMEOUT must be positive, got %v", c.Explain.Timeout)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		return nil // posters disabled, placeholders only
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if _, err := url.ParseRequestURI(c.TMDB.ImageBaseURL); err != nil {
		return fmt.Errorf("TMDB_IMAGE_BASE_URL is invalid: %w", err)
	}
	if c.TMDB.CacheSize < 1 {
		return fmt.Errorf("TMDB_CACHE_SIZE must be positive, got %d", c.TMDB.CacheSize)
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %v", c.TMDB.Timeout)
	}
	return nil
}

func (c *Config) validateSession() error {
	s := c.Session
	switch s.Store {
	case "memory":
	case "badger":
		if s.Path == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=badger")
		}
	case "redis":
		if s.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be memory, badger or redis, got %q", s.Store)
	}
	if s.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %v", s.TTL)
	}
	if _, err := cron.ParseStandard(s.PruneSchedule); err != nil {
		return fmt.Errorf("SESSION_PRUNE_SCHEDULE is invalid: %w", err)
	}
	return nil
}

func (c *Config) validateFeedback() error {
	if c.Feedback.Enabled && c.Feedback.Path == "" {
		return fmt.Errorf("FEEDBACK_DB_PATH is required when FEEDBACK_ENABLED=true")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL validates that a URL is a bare http(s) base URL:
// scheme and host present, no path beyond "/", no query.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}
