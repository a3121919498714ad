// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"errors"
	"fmt"
	"math"
)

// Weights combines the genre and tag similarities.
type Weights struct {
	Genre float64 `json:"genre"`
	Tag   float64 `json:"tag"`
}

// WithoutTags is the fixed weighting when no chosen tag resolves.
var WithoutTags = Weights{Genre: 1, Tag: 0}

// Config contains the ranking policy.
type Config struct {
	// WithTags is used when at least one chosen tag resolves.
	WithTags Weights `json:"with_tags"`

	// MaxSelections and MaxTags cap the request; extra entries are dropped.
	MaxSelections int `json:"max_selections"`
	MaxTags       int `json:"max_tags"`
}

// DefaultConfig returns the 50/50 policy with five titles and five tags.
func DefaultConfig() Config {
	return Config{
		WithTags:      Weights{Genre: 0.5, Tag: 0.5},
		MaxSelections: 5,
		MaxTags:       5,
	}
}

// Validate checks the policy.
//
//nolint:gocritic // value receiver mirrors DefaultConfig
func (c Config) Validate() error {
	w := c.WithTags
	if invalidWeight(w.Genre) || invalidWeight(w.Tag) {
		return fmt.Errorf("weights must be finite and non-negative, got genre=%v tag=%v", w.Genre, w.Tag)
	}
	if w.Genre+w.Tag == 0 {
		return errors.New("weights must not both be zero")
	}
	if c.MaxSelections < 1 {
		return fmt.Errorf("max selections must be at least 1, got %d", c.MaxSelections)
	}
	if c.MaxTags < 0 {
		return fmt.Errorf("max tags must not be negative, got %d", c.MaxTags)
	}
	return nil
}

func invalidWeight(w float64) bool {
	return w < 0 || math.IsNaN(w) || math.IsInf(w, 0)
}
