// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import "testing"

func TestCompileFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"year bound", "year >= 1990", false},
		{"genre membership", `"Drama" in genres`, false},
		{"combined", `avg_rating > 3.5 && n_ratings >= 10 && !title.contains("Christmas")`, false},
		{"syntax error", "year >=", true},
		{"unknown variable", "runtime > 90", true},
		{"non bool", "year + 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := CompileFilter(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompileFilter(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if err == nil && f.String() != tt.expr {
				t.Errorf("String() = %q, want %q", f.String(), tt.expr)
			}
		})
	}
}

func TestFilterMatch(t *testing.T) {
	t.Parallel()

	f, err := CompileFilter(`year >= 1999 && "Action" in genres`)
	if err != nil {
		t.Fatalf("CompileFilter() error = %v", err)
	}

	tests := []struct {
		movie Movie
		want  bool
	}{
		{Movie{ID: 1, Title: "The Matrix (1999)", Year: 1999, Genres: []string{"Action", "Sci-Fi"}}, true},
		{Movie{ID: 2, Title: "Heat (1995)", Year: 1995, Genres: []string{"Action"}}, false},
		{Movie{ID: 3, Title: "Amelie (2001)", Year: 2001, Genres: []string{"Comedy"}}, false},
		{Movie{ID: 4, Title: "Untitled", Year: 2005}, false},
	}
	for _, tt := range tests {
		got, err := f.Match(&tt.movie)
		if err != nil {
			t.Fatalf("Match(%q) error = %v", tt.movie.Title, err)
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.movie.Title, got, tt.want)
		}
	}
}
