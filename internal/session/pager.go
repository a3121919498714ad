// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import "github.com/tomtom215/moviemate/internal/metrics"

// Pager holds the reveal policy.
type Pager struct {
	Initial int
	Step    int
}

// DefaultPager reveals three results and three more per request.
func DefaultPager() Pager { return Pager{Initial: 3, Step: 3} }

// Sync resets s.Reveal and the explanation cache when fingerprint differs
// from the stored one, and records the new fingerprint. It reports whether a
// reset happened. It must run before the ranked list is sliced.
func (p Pager) Sync(s *Session, fingerprint string) bool {
	if s.Fingerprint == fingerprint {
		return false
	}
	s.Fingerprint = fingerprint
	s.Reveal = p.Initial
	s.Explanations.Reset(fingerprint)
	metrics.RecordPaginationReset()
	return true
}

// Clamp bounds reveal to [0, total].
func (p Pager) Clamp(reveal, total int) int {
	return max(0, min(reveal, total))
}

// LoadMore returns min(reveal+Step, total) and whether that shows more than
// the clamped current reveal.
func (p Pager) LoadMore(reveal, total int) (int, bool) {
	current := p.Clamp(reveal, total)
	next := min(current+p.Step, total)
	return next, next > current
}
