// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via the mapped variables
//
// Configuration Categories:
//
//  1. Data: Catalog (dataset paths, quality gate, filter expression)
//  2. Recommendation: Ranking weights, Pagination steps, Explain strategy
//  3. External services: TMDB posters, OpenAI explanations
//  4. State: Session store, Feedback store
//  5. Serving: Server, Security, Logging
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Ranking    RankingConfig    `koanf:"ranking"`
	Pagination PaginationConfig `koanf:"pagination"`
	Explain    ExplainConfig    `koanf:"explain"`
	TMDB       TMDBConfig       `koanf:"tmdb"`
	Session    SessionConfig    `koanf:"session"`
	Feedback   FeedbackConfig   `koanf:"feedback"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // read/write timeout
	HandlerTimeout  time.Duration `koanf:"handler_timeout"`  // per-request context deadline
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // graceful shutdown budget
	Environment     string        `koanf:"environment"`      // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig describes where the four datasets live and how the working
// catalog is filtered after loading.
type CatalogConfig struct {
	MoviesPath    string `koanf:"movies_path"`
	RatingsPath   string `koanf:"ratings_path"`    // optional
	TagsPath      string `koanf:"tags_path"`       // optional
	TagScoresPath string `koanf:"tag_scores_path"` // optional

	// Delimiter forces a field separator. Empty means sniff from the header.
	Delimiter string `koanf:"delimiter"`

	// Quality gate, only applied when RatingsPath is set.
	QualityGate    bool    `koanf:"quality_gate"`
	MinAvgRating   float64 `koanf:"min_avg_rating"`
	MinRatingCount int     `koanf:"min_rating_count"`

	// FilterExpr is an optional CEL expression over title, year, genres,
	// avg_rating and n_ratings. Movies for which it is false are dropped.
	FilterExpr string `koanf:"filter_expr"`
}

// RankingConfig holds the similarity weighting policy and selection limits.
type RankingConfig struct {
	// GenreWeight and TagWeight apply when at least one tag resolves.
	// Without tags the ranker always uses genre=1, tag=0.
	GenreWeight      float64 `koanf:"genre_weight"`
	TagWeight        float64 `koanf:"tag_weight"`
	DefaultYearFloor int     `koanf:"default_year_floor"`
	MaxSelections    int     `koanf:"max_selections"`
	MaxTags          int     `koanf:"max_tags"`
}

// PaginationConfig controls the "load more" reveal window.
type PaginationConfig struct {
	Initial int `koanf:"initial"`
	Step    int `koanf:"step"`
}

// ExplainConfig selects and tunes the explanation strategy.
type ExplainConfig struct {
	Strategy    string        `koanf:"strategy"`     // template or generative
	PhrasesPath string        `koanf:"phrases_path"` // optional YAML phrase pools
	Seed        int64         `koanf:"seed"`         // 0 means time-seeded
	Timeout     time.Duration `koanf:"timeout"`
	OpenAI      OpenAIConfig  `koanf:"openai"`
}

// OpenAIConfig configures the chat-completions backend for generative
// explanations.
type OpenAIConfig struct {
	BaseURL           string  `koanf:"base_url"`
	APIKey            string  `koanf:"api_key"`
	Model             string  `koanf:"model"`
	Temperature       float64 `koanf:"temperature"`
	MaxTokens         int     `koanf:"max_tokens"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TMDBConfig configures poster and overview lookups.
type TMDBConfig struct {
	APIKey            string        `koanf:"api_key"` // empty disables lookups
	BaseURL           string        `koanf:"base_url"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	CacheSize         int           `koanf:"cache_size"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// SessionConfig selects the session persistence backend.
type SessionConfig struct {
	Store         string        `koanf:"store"` // memory, badger, redis
	Path          string        `koanf:"path"`  // badger directory
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	TTL           time.Duration `koanf:"ttl"`
	PruneSchedule string        `koanf:"prune_schedule"` // cron spec
}

// FeedbackConfig configures the append-only survey store.
type FeedbackConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// SecurityConfig holds inbound rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
