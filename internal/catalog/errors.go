// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"errors"
	"fmt"
)

// Dataset names used in LoadError and metrics.
const (
	DatasetMovies    = "movies"
	DatasetRatings   = "ratings"
	DatasetTags      = "tags"
	DatasetTagScores = "tag_scores"
	DatasetFilter    = "filter"
)

var (
	// ErrMarkup means the file starts with HTML instead of tabular data.
	ErrMarkup = errors.New("file contains HTML markup instead of tabular data")

	// ErrMissingColumn means a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyCatalog means no movie survived loading and filtering.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// LoadError is the fatal catalog loading error. The server refuses to start
// when it sees one.
type LoadError struct {
	Dataset string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog: load %s: %v", e.Dataset, e.Err)
	}
	return fmt.Sprintf("catalog: load %s from %s: %v", e.Dataset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
