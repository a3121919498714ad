// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package middleware provides the infrastructure HTTP middleware used by the
API router.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    with the chi route pattern so session ids never become label values
  - Compression: gzip for clients that accept it
  - Timeout: per-request context deadline

All constructors return func(http.Handler) http.Handler so they plug
straight into chi:

	r := chi.NewRouter()
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Request ids, real-IP extraction, CORS and rate limiting come from chi and
its companion modules and are wired in the api package.
*/
package middleware
