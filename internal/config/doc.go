// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package config provides centralized configuration management for MovieMate.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file (CONFIG_PATH, ./config.yaml or /etc/moviemate/config.yaml), then mapped
environment variables. The merged result is validated section by section.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 8501), HTTP_TIMEOUT, HANDLER_TIMEOUT, ENVIRONMENT

Catalog:
  - MOVIES_PATH (required), RATINGS_PATH, TAGS_PATH, TAG_SCORES_PATH
  - CATALOG_DELIMITER: force , ; | or tab instead of sniffing
  - CATALOG_QUALITY_GATE, CATALOG_MIN_AVG_RATING (3.0), CATALOG_MIN_RATING_COUNT (50)
  - CATALOG_FILTER_EXPR: CEL expression, e.g. year >= 1950 && "Drama" in genres

Ranking:
  - RANKING_GENRE_WEIGHT, RANKING_TAG_WEIGHT (0.5 each, used when tags resolve)
  - DEFAULT_YEAR_FLOOR (1999), RANKING_MAX_SELECTIONS (5), RANKING_MAX_TAGS (5)
  - PAGINATION_INITIAL (3), PAGINATION_STEP (3)

Explanations:
  - EXPLAIN_STRATEGY: template (default) or generative
  - EXPLAIN_PHRASES_PATH, EXPLAIN_SEED, EXPLAIN_TIMEOUT
  - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL, OPENAI_TEMPERATURE, OPENAI_MAX_TOKENS

Posters:
  - TMDB_API_KEY (empty disables lookups), TMDB_BASE_URL, TMDB_CACHE_SIZE, TMDB_CACHE_TTL

Sessions and feedback:
  - SESSION_STORE: memory, badger or redis
  - SESSION_STORE_PATH, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
  - SESSION_TTL, SESSION_PRUNE_SCHEDULE (cron, default @every 10m)
  - FEEDBACK_ENABLED, FEEDBACK_DB_PATH

Security and logging:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
