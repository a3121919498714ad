// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moviemate/config.yaml",
	"/etc/moviemate/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			HandlerTimeout:  10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Catalog: CatalogConfig{
			MoviesPath:     "./data/movies.csv",
			RatingsPath:    "./data/ratings.csv",
			TagsPath:       "",
			TagScoresPath:  "",
			Delimiter:      "", // sniffed
			QualityGate:    true,
			MinAvgRating:   3.0,
			MinRatingCount: 50,
		},
		Ranking: RankingConfig{
			GenreWeight:      0.5,
			TagWeight:        0.5,
			DefaultYearFloor: 1999,
			MaxSelections:    5,
			MaxTags:          5,
		},
		Pagination: PaginationConfig{
			Initial: 3,
			Step:    3,
		},
		Explain: ExplainConfig{
			Strategy: "template",
			Timeout:  8 * time.Second,
			OpenAI: OpenAIConfig{
				BaseURL:           "https://api.openai.com",
				Model:             "gpt-4o-mini",
				Temperature:       0.7,
				MaxTokens:         150,
				RequestsPerSecond: 2,
				Burst:             4,
			},
		},
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org",
			ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
			Timeout:           8 * time.Second,
			CacheSize:         2048,
			CacheTTL:          24 * time.Hour,
			RequestsPerSecond: 20, // TMDB allows roughly 40-50 rps per IP
			Burst:             10,
		},
		Session: SessionConfig{
			Store:         "memory",
			Path:          "./data/sessions",
			RedisAddr:     "",
			RedisDB:       0,
			TTL:           24 * time.Hour,
			PruneSchedule: "@every 10m",
		},
		Feedback: FeedbackConfig{
			Enabled: true,
			Path:    "./data/feedback.db",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//
// The merged result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables (highest priority)
	// TMDB_API_KEY -> tmdb.api_key, SESSION_STORE -> session.store
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, honoring CONFIG_PATH,
// or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields lists.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"handler_timeout":  "server.handler_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Catalog datasets
	"movies_path":              "catalog.movies_path",
	"ratings_path":             "catalog.ratings_path",
	"tags_path":                "catalog.tags_path",
	"tag_scores_path":          "catalog.tag_scores_path",
	"catalog_delimiter":        "catalog.delimiter",
	"catalog_quality_gate":     "catalog.quality_gate",
	"catalog_min_avg_rating":   "catalog.min_avg_rating",
	"catalog_min_rating_count": "catalog.min_rating_count",
	"catalog_filter_expr":      "catalog.filter_expr",

	// Ranking and pagination
	"ranking_genre_weight":   "ranking.genre_weight",
	"ranking_tag_weight":     "ranking.tag_weight",
	"default_year_floor":     "ranking.default_year_floor",
	"ranking_max_selections": "ranking.max_selections",
	"ranking_max_tags":       "ranking.max_tags",
	"pagination_initial":     "pagination.initial",
	"pagination_step":        "pagination.step",

	// Explanations
	"explain_strategy":     "explain.strategy",
	"explain_phrases_path": "explain.phrases_path",
	"explain_seed":         "explain.seed",
	"explain_timeout":      "explain.timeout",
	"openai_base_url":      "explain.openai.base_url",
	"openai_api_key":       "explain.openai.api_key",
	"openai_model":         "explain.openai.model",
	"openai_temperature":   "explain.openai.temperature",
	"openai_max_tokens":    "explain.openai.max_tokens",
	"openai_rps":           "explain.openai.requests_per_second",
	"openai_burst":         "explain.openai.burst",

	// TMDB
	"tmdb_api_key":        "tmdb.api_key",
	"tmdb_base_url":       "tmdb.base_url",
	"tmdb_image_base_url": "tmdb.image_base_url",
	"tmdb_timeout":        "tmdb.timeout",
	"tmdb_cache_size":     "tmdb.cache_size",
	"tmdb_cache_ttl":      "tmdb.cache_ttl",
	"tmdb_rps":            "tmdb.requests_per_second",
	"tmdb_burst":          "tmdb.burst",

	// Sessions
	"session_store":          "session.store",
	"session_store_path":     "session.path",
	"redis_addr":             "session.redis_addr",
	"redis_password":         "session.redis_password",
	"redis_db":               "session.redis_db",
	"session_ttl":            "session.ttl",
	"session_prune_schedule": "session.prune_schedule",

	// Feedback
	"feedback_enabled": "feedback.enabled",
	"feedback_db_path": "feedback.path",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TMDB_API_KEY -> tmdb.api_key
//   - OPENAI_API_KEY -> explain.openai.api_key
//   - HTTP_PORT -> server.port
//
// Unmapped keys return "" so that unrelated environment variables never
// pollute the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
