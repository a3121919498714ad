// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package extsvc

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/moviemate/internal/metrics"
)

// Guard bundles the limiter and breaker protecting one external service.
type Guard struct {
	service string
	limiter *Limiter
	breaker *Breaker
}

// NewGuard creates a guard for service. A nil limiter disables rate
// limiting; a nil breaker gets DefaultBreakerSettings.
func NewGuard(service string, limiter *Limiter, breaker *Breaker) *Guard {
	if limiter == nil {
		limiter = NewLimiter(0, 0)
	}
	if breaker == nil {
		breaker = NewBreaker(service, DefaultBreakerSettings())
	}
	return &Guard{service: service, limiter: limiter, breaker: breaker}
}

// Service returns the guarded service name.
func (g *Guard) Service() string { return g.service }

// Breaker exposes the underlying breaker for health reporting.
func (g *Guard) Breaker() *Breaker { return g.breaker }

// Do runs fn after acquiring a rate-limit token, under the circuit breaker,
// and records the outcome. Every failure comes back as *Error.
func Do[T any](ctx context.Context, g *Guard, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if err := g.limiter.Wait(ctx); err != nil {
		metrics.RecordExternalRequest(g.service, "rate_limited", 0)
		return zero, &Error{Service: g.service, Op: op, Err: err}
	}

	start := time.Now()
	result, err := Execute(g.breaker, func() (T, error) {
		return fn(ctx)
	})
	elapsed := time.Since(start)

	if err != nil {
		if IsRejected(err) {
			metrics.RecordExternalRequest(g.service, "rejected", 0)
		} else {
			metrics.RecordExternalRequest(g.service, "error", elapsed)
		}
		var svcErr *Error
		if errors.As(err, &svcErr) {
			return zero, svcErr
		}
		return zero, &Error{Service: g.service, Op: op, Err: err}
	}

	metrics.RecordExternalRequest(g.service, "success", elapsed)
	return result, nil
}
