// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	movies := append(sampleMovies(), Movie{ID: 2, Title: "Duplicate"})
	tags := []Tag{{ID: 30, Name: "twist"}, {ID: 10, Name: "Dark"}, {ID: 20, Name: "funny"}, {ID: 10, Name: "dup"}}
	scores := []TagScore{
		{MovieID: 1, TagID: 20, Relevance: 0.9},
		{MovieID: 99, TagID: 20, Relevance: 0.9}, // unknown movie
		{MovieID: 1, TagID: 99, Relevance: 0.9},  // unknown tag
	}

	c := New(movies, tags, scores, nil)

	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
	if m, _ := c.MovieByID(2); m.Title != "Heat (1995)" {
		t.Errorf("MovieByID(2).Title = %q, want first occurrence", m.Title)
	}

	var ids []int
	for _, tag := range c.Tags() {
		ids = append(ids, tag.ID)
	}
	if !reflect.DeepEqual(ids, []int{10, 20, 30}) {
		t.Errorf("tag ids = %v, want ascending [10 20 30]", ids)
	}
	if got := len(c.TagScores()); got != 1 {
		t.Errorf("len(TagScores()) = %d, want 1", got)
	}
	if tag, ok := c.TagByName("  DARK "); !ok || tag.ID != 10 {
		t.Errorf("TagByName(DARK) = %v, %v, want id 10", tag, ok)
	}
	if idx, ok := c.IndexOf(3); !ok || idx != 2 {
		t.Errorf("IndexOf(3) = %d, %v, want 2, true", idx, ok)
	}

	st := c.Stats()
	if st.MoviesWorking != 5 || st.Tags != 3 || st.TagScores != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestResolveTitles(t *testing.T) {
	t.Parallel()

	c := New(sampleMovies(), nil, nil, nil)

	resolved, unresolved := c.ResolveTitles([]string{
		"Heat (1995)",
		"the matrix (1999) ",
		"Heat (1995)",
		"Nope (2022)",
	})

	var ids []int
	for _, m := range resolved {
		ids = append(ids, m.ID)
	}
	if !reflect.DeepEqual(ids, []int{2, 3}) {
		t.Errorf("resolved ids = %v, want [2 3]", ids)
	}
	if !reflect.DeepEqual(unresolved, []string{"Nope (2022)"}) {
		t.Errorf("unresolved = %v, want [Nope (2022)]", unresolved)
	}
}

func TestBrowse(t *testing.T) {
	t.Parallel()

	c := New(sampleMovies(), nil, nil, nil)

	tests := []struct {
		name      string
		q         BrowseQuery
		wantTotal int
		wantIDs   []int
	}{
		{"all sorted by title", BrowseQuery{}, 5, []int{4, 2, 5, 3, 1}},
		{"year floor", BrowseQuery{YearFrom: 1999}, 3, []int{4, 5, 3}},
		{"substring is case insensitive", BrowseQuery{Query: "MAT"}, 1, []int{3}},
		{"query is literal", BrowseQuery{Query: "(1995"}, 2, []int{2, 1}},
		{"paged", BrowseQuery{Offset: 1, Limit: 2}, 5, []int{2, 5}},
		{"offset past end", BrowseQuery{Offset: 10}, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := c.Browse(tt.q)
			if res.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", res.Total, tt.wantTotal)
			}
			var ids []int
			for _, m := range res.Movies {
				ids = append(ids, m.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}
