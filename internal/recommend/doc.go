// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

// Package recommend builds a user profile from selected movies and ranks the
// rest of the catalog against it.
//
// # Pipeline
//
//   - Profile: selected titles resolve against the full working catalog.
//     The genre profile is the column-wise mean of their genre rows; the tag
//     profile is a presence indicator over the chosen tags.
//   - Rank: every movie released in or after the year floor, minus the
//     selection, is scored by cosine similarity in both feature spaces. The
//     combined score is a weighted sum; with no resolved tags the tag term
//     is exactly zero and the genre weight is one.
//   - Order: stable sort by combined similarity, descending. The full list
//     is returned; slicing is the caller's job so revealing more results
//     never re-sorts.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, features.NewEncoder(cat), recommend.DefaultConfig())
//	ranking, err := engine.Recommend(ctx, recommend.Request{
//	    Titles:    titles,
//	    Tags:      []string{"dark"},
//	    YearFloor: 1999,
//	})
//	if errors.Is(err, recommend.ErrNoProfile) {
//	    // ask the user to pick different movies
//	}
//
// # Determinism
//
// Ranking is a pure function of the catalog, the request and the weights.
// Equal scores keep catalog load order.
//
// # Thread Safety
//
// Engine holds only immutable state and is safe for concurrent use.
package recommend
