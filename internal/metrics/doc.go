// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package metrics provides Prometheus metrics for MovieMate.

Collectors are registered with the default registry through promauto and are
exposed by the API router at /metrics:

	curl http://localhost:8501/metrics

Components do not touch collectors directly; they call the Record helpers:

	start := time.Now()
	ranking, err := engine.Recommend(ctx, req)
	metrics.RecordRanking(time.Since(start), len(ranking.Items), "ok")

Useful queries:

	# p95 ranking latency
	histogram_quantile(0.95, rate(moviemate_ranking_duration_seconds_bucket[5m]))

	# explanation cache hit ratio
	rate(moviemate_explanation_cache_hits_total[5m])
	  / (rate(moviemate_explanation_cache_hits_total[5m]) + rate(moviemate_explanation_cache_misses_total[5m]))

	# TMDB breaker open
	circuit_breaker_state{name="tmdb"} == 2
*/
package metrics
