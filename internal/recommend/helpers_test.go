// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"testing"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/features"
)

// actionCatalog has ten movies over three genres. Movies 1-5 are the usual
// selection; 6-10 are candidates.
func actionCatalog() *catalog.Catalog {
	movies := []catalog.Movie{
		{ID: 1, Title: "Sel One (2001)", Year: 2001, Genres: []string{"Action"}},
		{ID: 2, Title: "Sel Two (2002)", Year: 2002, Genres: []string{"Action"}},
		{ID: 3, Title: "Sel Three (2003)", Year: 2003, Genres: []string{"Action", "Comedy"}},
		{ID: 4, Title: "Sel Four (2004)", Year: 2004, Genres: []string{"Action", "Drama"}},
		{ID: 5, Title: "Sel Five (2005)", Year: 2005, Genres: []string{"Action"}},
		{ID: 6, Title: "Cand Six (2006)", Year: 2006, Genres: []string{"Action", "Comedy"}},
		{ID: 7, Title: "Cand Seven (2007)", Year: 2007, Genres: []string{"Action"}},
		{ID: 8, Title: "Cand Eight (1990)", Year: 1990, Genres: []string{"Comedy"}},
		{ID: 9, Title: "Cand Nine (2009)", Year: 2009, Genres: []string{"Drama"}},
		{ID: 10, Title: "Cand Ten", Year: 0},
	}
	tags := []catalog.Tag{{ID: 1, Name: "explosions"}, {ID: 2, Name: "quirky"}}
	scores := []catalog.TagScore{
		{MovieID: 6, TagID: 2, Relevance: 1},
		{MovieID: 7, TagID: 1, Relevance: 1},
		{MovieID: 8, TagID: 2, Relevance: 0.5},
		{MovieID: 9, TagID: 1, Relevance: 0.2},
		{MovieID: 9, TagID: 2, Relevance: 0.2},
	}
	return catalog.New(movies, tags, scores, nil)
}

var selectionTitles = []string{
	"Sel One (2001)", "Sel Two (2002)", "Sel Three (2003)", "Sel Four (2004)", "Sel Five (2005)",
}

func newTestEngine(t *testing.T, cat *catalog.Catalog) *Engine {
	t.Helper()
	e, err := NewEngine(cat, features.NewEncoder(cat), DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func ids(items []ScoredMovie) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
