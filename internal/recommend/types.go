// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/moviemate/internal/catalog"
)

// ErrNoProfile means the selection resolved to no catalog movie, so there is
// nothing to rank against.
var ErrNoProfile = errors.New("no profile: none of the selected movies were found in the catalog")

// Request is the ranking input.
type Request struct {
	Titles    []string `json:"titles"`
	Tags      []string `json:"tags"`
	YearFloor int      `json:"year_floor"`
}

// ScoredMovie is a ranked candidate.
type ScoredMovie struct {
	catalog.Movie

	GenreSimilarity float64 `json:"genre_similarity"`
	TagSimilarity   float64 `json:"tag_similarity"`
	Similarity      float64 `json:"similarity"`

	// Rank is 1-based.
	Rank int `json:"rank"`
}

// Ranking is the full ordered candidate list for one request.
type Ranking struct {
	Items       []ScoredMovie `json:"items"`
	Weights     Weights       `json:"weights"`
	YearFloor   int           `json:"year_floor"`
	Selected    []int         `json:"selected_ids"`
	Unresolved  []string      `json:"unresolved_titles,omitempty"`
	UnknownTags []string      `json:"unknown_tags,omitempty"`
	Duration    time.Duration `json:"-"`
}

// Len returns the number of ranked candidates.
func (r *Ranking) Len() int { return len(r.Items) }
