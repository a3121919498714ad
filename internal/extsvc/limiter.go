// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package extsvc

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter is a client-side token bucket that keeps us under an external
// API's published quota.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter allows rps requests per second with the given burst.
// rps <= 0 disables limiting.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{l: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available. It fails with ErrRateLimited when
// ctx ends first or when the wait would exceed ctx's deadline.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.l.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return nil
}
