// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Catalog loading
// - Ranking latency and candidate set sizes
// - Explanation generation and caching
// - Pagination and session lifecycle
// - External services (TMDB, OpenAI) and their circuit breakers
// - HTTP API latency and throughput

var (
	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviemate_catalog_load_duration_seconds",
			Help:    "Duration of the one-time catalog load in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_catalog_load_errors_total",
			Help: "Total number of catalog load failures by dataset",
		},
		[]string{"dataset"}, // movies, ratings, tags, tag_scores, filter
	)

	CatalogMovies = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moviemate_catalog_movies",
			Help: "Number of movies in the catalog",
		},
		[]string{"stage"}, // "loaded", "working"
	)

	CatalogTags = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviemate_catalog_tags",
			Help: "Number of tag definitions in the catalog",
		},
	)

	EncodingMismatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_encoding_mismatches_total",
			Help: "Feature vectors that had to be reindexed onto a different column set",
		},
		[]string{"space"}, // "genre", "tag"
	)

	// Ranking Metrics
	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviemate_ranking_duration_seconds",
			Help:    "Duration of profile building plus ranking in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RankingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_ranking_requests_total",
			Help: "Total number of ranking requests",
		},
		[]string{"result"}, // "ok", "no_profile", "error"
	)

	RankingCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviemate_ranking_candidates",
			Help:    "Number of candidates scored per ranking request",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	// Explanation Metrics
	ExplanationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_explanations_total",
			Help: "Total number of generated explanations",
		},
		[]string{"strategy", "outcome"}, // outcome: "ok", "fallback"
	)

	ExplanationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviemate_explanation_duration_seconds",
			Help:    "Duration of explanation generation in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2, 4, 8},
		},
		[]string{"strategy"},
	)

	ExplanationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemate_explanation_cache_hits_total",
			Help: "Explanations served from the session cache",
		},
	)

	ExplanationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemate_explanation_cache_misses_total",
			Help: "Explanations that had to be generated",
		},
	)

	// Session and Pagination Metrics
	PaginationResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemate_pagination_resets_total",
			Help: "Reveal count resets caused by a selection fingerprint change",
		},
	)

	PaginationLoadMore = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_pagination_load_more_total",
			Help: "Load-more requests by outcome",
		},
		[]string{"result"}, // "advanced", "exhausted"
	)

	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_session_operations_total",
			Help: "Session controller operations",
		},
		[]string{"operation", "result"},
	)

	SessionsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemate_sessions_pruned_total",
			Help: "Sessions removed by the maintenance job",
		},
	)

	MaintenanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_maintenance_runs_total",
			Help: "Scheduled maintenance job runs",
		},
		[]string{"job", "result"},
	)

	// Lookup cache metrics (TMDB)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// External Service Metrics
	ExternalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_external_requests_total",
			Help: "Outbound requests to external services",
		},
		[]string{"service", "result"}, // result: "success", "error", "rejected", "rate_limited"
	)

	ExternalRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviemate_external_request_duration_seconds",
			Help:    "Duration of outbound requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		},
		[]string{"service"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Feedback Metrics
	FeedbackRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_feedback_records_total",
			Help: "Feedback records appended",
		},
		[]string{"result"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemate_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviemate_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviemate_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moviemate_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordCatalogLoad records the outcome of the catalog load. dataset names the
// failing dataset and is ignored on success.
func RecordCatalogLoad(duration time.Duration, loaded, working, tags int, dataset string, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogLoadErrors.WithLabelValues(dataset).Inc()
		return
	}
	CatalogMovies.WithLabelValues("loaded").Set(float64(loaded))
	CatalogMovies.WithLabelValues("working").Set(float64(working))
	CatalogTags.Set(float64(tags))
}

// RecordEncodingMismatch counts a reindexed feature vector.
func RecordEncodingMismatch(space string) {
	EncodingMismatches.WithLabelValues(space).Inc()
}

// RecordRanking records a ranking request. result is "ok", "no_profile" or "error".
func RecordRanking(duration time.Duration, candidates int, result string) {
	RankingDuration.Observe(duration.Seconds())
	RankingRequests.WithLabelValues(result).Inc()
	if result == "ok" {
		RankingCandidates.Observe(float64(candidates))
	}
}

// RecordExplanation records one generated explanation.
func RecordExplanation(strategy string, duration time.Duration, fallback bool) {
	outcome := "ok"
	if fallback {
		outcome = "fallback"
	}
	ExplanationsTotal.WithLabelValues(strategy, outcome).Inc()
	ExplanationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordExplanationCache records a session explanation cache lookup.
func RecordExplanationCache(hit bool) {
	if hit {
		ExplanationCacheHits.Inc()
	} else {
		ExplanationCacheMisses.Inc()
	}
}

// RecordPaginationReset counts a fingerprint-driven reveal reset.
func RecordPaginationReset() {
	PaginationResets.Inc()
}

// RecordLoadMore records a load-more request; advanced is false when the
// reveal count was already at the total.
func RecordLoadMore(advanced bool) {
	if advanced {
		PaginationLoadMore.WithLabelValues("advanced").Inc()
	} else {
		PaginationLoadMore.WithLabelValues("exhausted").Inc()
	}
}

// RecordSessionOperation records a controller operation.
func RecordSessionOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SessionOperations.WithLabelValues(operation, result).Inc()
}

// RecordMaintenance records a maintenance job run.
func RecordMaintenance(job string, pruned int, err error) {
	if err != nil {
		MaintenanceRuns.WithLabelValues(job, "error").Inc()
		return
	}
	MaintenanceRuns.WithLabelValues(job, "success").Inc()
	SessionsPruned.Add(float64(pruned))
}

// RecordCacheLookup records a lookup cache hit or miss.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordExternalRequest records an outbound call to an external service.
func RecordExternalRequest(service, result string, duration time.Duration) {
	ExternalRequests.WithLabelValues(service, result).Inc()
	if duration > 0 {
		ExternalRequestDuration.WithLabelValues(service).Observe(duration.Seconds())
	}
}

// RecordFeedback records an append to the feedback store.
func RecordFeedback(err error) {
	if err != nil {
		FeedbackRecords.WithLabelValues("error").Inc()
		return
	}
	FeedbackRecords.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
