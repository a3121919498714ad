// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import "time"

// Movie is one row of the working catalog.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"` // 0 when unknown
	Genres      []string `json:"genres"`
	AvgRating   float64  `json:"avg_rating"`
	RatingCount int      `json:"rating_count"`
}

// Rating is a single user rating of a movie.
type Rating struct {
	MovieID int     `json:"movie_id"`
	Value   float64 `json:"value"`
}

// Tag is a descriptive tag from the tag vocabulary.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TagScore is the relevance of a tag for a movie, in [0, 1].
type TagScore struct {
	MovieID   int     `json:"movie_id"`
	TagID     int     `json:"tag_id"`
	Relevance float64 `json:"relevance"`
}

// Stats summarizes a load.
type Stats struct {
	MoviesLoaded  int           `json:"movies_loaded"`
	MoviesWorking int           `json:"movies_working"`
	Ratings       int           `json:"ratings"`
	Tags          int           `json:"tags"`
	TagScores     int           `json:"tag_scores"`
	Filtered      bool          `json:"filtered"` // quality gate or filter expression applied
	LoadedAt      time.Time     `json:"loaded_at"`
	Duration      time.Duration `json:"duration_ns"`
}
