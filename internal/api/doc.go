// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package api exposes MovieMate over HTTP using the chi router.

# Endpoints

	GET    /api/v1/health/live               liveness
	GET    /api/v1/health/ready              catalog statistics
	GET    /api/v1/movies                    browse (q, year_from, offset, limit, posters, session_id)
	GET    /api/v1/tags                      tag vocabulary
	POST   /api/v1/sessions                  start a session
	GET    /api/v1/sessions/{id}             render the current view
	PUT    /api/v1/sessions/{id}/selection   replace titles, tags and year floor
	POST   /api/v1/sessions/{id}/more        reveal the next page
	DELETE /api/v1/sessions/{id}             end a session
	POST   /api/v1/sessions/{id}/feedback    append a survey record
	GET    /metrics                          Prometheus

# Response Envelope

Every JSON response uses one envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NO_PROFILE", "message": "...", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

A selection that resolves to no catalog movie is answered with 422 and code
NO_PROFILE. The session keeps the new selection so the client can fix it.

# Middleware

Global: request id with logging context, real IP, panic recovery, CORS.
API routes add per-IP rate limiting, security headers, Prometheus metrics,
gzip and a per-request deadline.
*/
package api
