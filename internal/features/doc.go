// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package features encodes catalog movies as fixed-width numeric vectors.

Two feature spaces are built once from the working catalog:

  - Genre space: one binary column per distinct genre token, sorted
    lexicographically. A movie row is its one-hot genre vector; movies
    without genres get the all-zero row.
  - Tag space: one column per tag in ascending tag id order. A movie row
    holds the relevance of each tag for that movie, zero-filled for
    missing (movie, tag) pairs and for movies absent from the relevance
    table.

Both spaces are derived from the full working catalog, never from a
year or search filtered view, so column identity is the same for profiles
and for every candidate.

# Usage

	enc := features.NewEncoder(cat)
	row := enc.Genres.Row(movieID)
	tagRow := enc.Tags.Row(movieID)
	profileTags := enc.Tags.Indicator([]int{tagID})

# Thread Safety

An Encoder is immutable after construction. Rows returned by Row and
Reindex are shared; callers must not modify them.
*/
package features
