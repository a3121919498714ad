// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

// Package extsvc holds the resilience kit shared by every outbound
// integration (TMDB, OpenAI): a circuit breaker, a client-side rate limiter
// and the error type callers use to degrade gracefully.
package extsvc

import (
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrRateLimited is returned when the local limiter could not grant a token
// before the context expired.
var ErrRateLimited = errors.New("rate limited")

// Error describes a failed call to an external service. Callers never surface
// it to users; they log it and fall back to a placeholder value.
type Error struct {
	Service    string // "tmdb", "openai"
	Op         string // e.g. "search_movie", "chat_completion"
	StatusCode int    // HTTP status when one was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Service, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsRejected reports whether err means the call never left the process,
// because the breaker was open or the limiter refused it.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		errors.Is(err, ErrRateLimited)
}
