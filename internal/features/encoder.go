// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package features

import (
	"time"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/logging"
)

// Encoder bundles the genre and tag matrices of one catalog.
type Encoder struct {
	Genres *GenreMatrix
	Tags   *TagMatrix
}

// NewEncoder builds both feature spaces from the full working catalog.
func NewEncoder(cat *catalog.Catalog) *Encoder {
	start := time.Now()
	movies := cat.Movies()
	enc := &Encoder{
		Genres: NewGenreMatrix(NewGenreSpace(movies), movies),
		Tags:   NewTagMatrix(cat.Tags(), cat.TagScores()),
	}

	logger := logging.WithComponent("features")
	logger.Info().
		Int("movies", len(movies)).
		Int("genre_columns", enc.Genres.Space().Len()).
		Int("tag_columns", enc.Tags.Len()).
		Int("tagged_movies", enc.Tags.Movies()).
		Dur("duration", time.Since(start)).
		Msg("Feature encoder built")
	return enc
}

// HasTags reports whether the tag space has any columns.
func (e *Encoder) HasTags() bool { return e.Tags.Len() > 0 }
