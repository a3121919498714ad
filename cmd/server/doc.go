// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package main is the entry point for the MovieMate server.

MovieMate recommends movies from a MovieLens-style catalog. A visitor picks
five titles (optionally a few tags and a release-year floor); the server
ranks the rest of the catalog by cosine similarity to the resulting genre
and tag profile and reveals the results three at a time, each with a short
explanation and a poster.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: CSV datasets loaded once; any load error aborts startup
 4. Ranking engine: genre and tag feature matrices
 5. TMDB client and explainer (template or generative), both behind a
    rate limiter and circuit breaker
 6. Session store (memory, Badger or Redis) and session controller
 7. Feedback store (SQLite), when enabled
 8. Chi router, then the suture tree:

	RootSupervisor ("moviemate")
	├── DataSupervisor ("data-layer")
	│   └── SessionMaintenanceService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Configuration

The most common settings:

	MOVIES_PATH=./data/movies.csv
	RATINGS_PATH=./data/ratings.csv
	TMDB_API_KEY=...                    # posters and overviews
	EXPLAIN_STRATEGY=generative         # default: template
	OPENAI_API_KEY=...
	SESSION_STORE=badger SESSION_STORE_PATH=./data/sessions
	FEEDBACK_ENABLED=true FEEDBACK_DB_PATH=./data/feedback.db

See the config package for the full list.

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains within the
configured shutdown timeout, then stores are closed.
*/
package main
