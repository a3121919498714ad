// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"context"
	"fmt"

	"github.com/tomtom215/moviemate/internal/recommend"
)

// Strategy names.
const (
	StrategyTemplate   = "template"
	StrategyGenerative = "generative"
)

// Candidate is what an explainer sees: the scored movie and the tags the
// user chose for this selection.
type Candidate struct {
	recommend.ScoredMovie
	Tags []string
}

// Explainer produces one explanation per candidate. Implementations must
// not fail; errors are folded into the returned text.
type Explainer interface {
	Explain(ctx context.Context, c Candidate) string
	Strategy() string
}

// Trust levels.
const (
	TrustVeryHigh = "very high"
	TrustHigh     = "high"
	TrustMedium   = "medium"
	TrustLow      = "low"
)

// TrustLevel buckets a combined similarity.
func TrustLevel(similarity float64) string {
	switch {
	case similarity >= 0.8:
		return TrustVeryHigh
	case similarity >= 0.6:
		return TrustHigh
	case similarity >= 0.4:
		return TrustMedium
	default:
		return TrustLow
	}
}

// TrustPercent renders similarity as a percentage with one decimal.
func TrustPercent(similarity float64) string {
	return fmt.Sprintf("%.1f%%", similarity*100)
}

// Fallback is the deterministic text used when generation fails.
func Fallback(err error) string {
	return fmt.Sprintf("This movie fits your profile (error: %v).", err)
}
