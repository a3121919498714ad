// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

const moviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Heat (1995),Action|Crime|Thriller
3,"Matrix, The (1999)",Action|Sci-Fi|Thriller
4,Obscure Short (2004),(no genres listed)
`

// ratingsFor writes n ratings of value v for each movie id.
func ratingsFor(counts map[int]int, values map[int]float64) string {
	var b strings.Builder
	b.WriteString("userId,movieId,rating,timestamp\n")
	for id := 1; id <= 4; id++ {
		for i := 0; i < counts[id]; i++ {
			fmt.Fprintf(&b, "%d,%d,%.1f,0\n", i, id, values[id])
		}
	}
	return b.String()
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("movies only skips quality gate", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))

		cat, err := NewLoader(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cat.Len() != 4 {
			t.Errorf("Len() = %d, want 4", cat.Len())
		}
		m, ok := cat.MovieByID(3)
		if !ok || m.Title != "Matrix, The (1999)" || m.Year != 1999 {
			t.Errorf("MovieByID(3) = %+v, want quoted title with year 1999", m)
		}
		if m, _ := cat.MovieByID(4); len(m.Genres) != 0 {
			t.Errorf("genres for (no genres listed) = %v, want empty", m.Genres)
		}
		if cat.Stats().Filtered {
			t.Error("Stats().Filtered = true, want false")
		}
	})

	t.Run("quality gate with ratings", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
		cfg.RatingsPath = writeFile(t, "ratings.csv", ratingsFor(
			map[int]int{1: 60, 2: 50, 3: 49, 4: 100},
			map[int]float64{1: 4.0, 2: 3.0, 3: 5.0, 4: 2.5},
		))

		cat, err := NewLoader(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		var ids []int
		for _, m := range cat.Movies() {
			ids = append(ids, m.ID)
		}
		if fmt.Sprint(ids) != "[1 2]" {
			t.Errorf("working ids = %v, want [1 2]", ids)
		}
		if m, _ := cat.MovieByID(2); m.AvgRating != 3.0 || m.RatingCount != 50 {
			t.Errorf("movie 2 aggregates = %.2f/%d, want 3.00/50", m.AvgRating, m.RatingCount)
		}
		st := cat.Stats()
		if st.MoviesLoaded != 4 || st.MoviesWorking != 2 || !st.Filtered {
			t.Errorf("Stats() = %+v", st)
		}
	})

	t.Run("gate disabled", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
		cfg.RatingsPath = writeFile(t, "ratings.csv", ratingsFor(map[int]int{1: 1}, map[int]float64{1: 1}))
		cfg.QualityGate = false

		cat, err := NewLoader(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cat.Len() != 4 {
			t.Errorf("Len() = %d, want 4", cat.Len())
		}
		if m, _ := cat.MovieByID(2); m.RatingCount != 0 || m.AvgRating != 0 {
			t.Errorf("unrated movie aggregates = %+v, want zero", m)
		}
	})

	t.Run("filter expression", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
		cfg.FilterExpr = `"Action" in genres`

		cat, err := NewLoader(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cat.Len() != 2 {
			t.Errorf("Len() = %d, want 2", cat.Len())
		}
	})

	t.Run("tags and scores", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
		cfg.TagsPath = writeFile(t, "tags.tsv", "tagId\ttag\n2\tdark\n1\tfunny\n")
		cfg.TagScoresPath = writeFile(t, "scores.csv", "movieId,tagId,relevance\n1,1,0.95\n2,2,1.2\n9,1,0.5\n")

		cat, err := NewLoader(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := cat.Tags(); len(got) != 2 || got[0].Name != "funny" {
			t.Errorf("Tags() = %v, want funny first", got)
		}
		scores := cat.TagScores()
		if len(scores) != 2 {
			t.Fatalf("len(TagScores()) = %d, want 2", len(scores))
		}
		if scores[1].Relevance != 1 {
			t.Errorf("clamped relevance = %v, want 1", scores[1].Relevance)
		}
	})
}

func TestLoaderLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(t *testing.T) Config
		wantDataset string
		wantErr     error
	}{
		{
			name: "html instead of csv",
			setup: func(t *testing.T) Config {
				return DefaultConfig(writeFile(t, "movies.csv", "<html><head><title>Google Drive</title></head></html>"))
			},
			wantDataset: DatasetMovies,
			wantErr:     ErrMarkup,
		},
		{
			name: "html ratings",
			setup: func(t *testing.T) Config {
				cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
				cfg.RatingsPath = writeFile(t, "ratings.csv", "<!DOCTYPE html>")
				return cfg
			},
			wantDataset: DatasetRatings,
			wantErr:     ErrMarkup,
		},
		{
			name: "missing title column",
			setup: func(t *testing.T) Config {
				return DefaultConfig(writeFile(t, "movies.csv", "movieId,genres\n1,Drama\n"))
			},
			wantDataset: DatasetMovies,
			wantErr:     ErrMissingColumn,
		},
		{
			name: "gate removes everything",
			setup: func(t *testing.T) Config {
				cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
				cfg.RatingsPath = writeFile(t, "ratings.csv", ratingsFor(map[int]int{1: 3}, map[int]float64{1: 5}))
				return cfg
			},
			wantDataset: DatasetMovies,
			wantErr:     ErrEmptyCatalog,
		},
		{
			name: "bad filter",
			setup: func(t *testing.T) Config {
				cfg := DefaultConfig(writeFile(t, "movies.csv", moviesCSV))
				cfg.FilterExpr = "year >"
				return cfg
			},
			wantDataset: DatasetFilter,
		},
		{
			name: "missing file",
			setup: func(t *testing.T) Config {
				return DefaultConfig(t.TempDir() + "/nope.csv")
			},
			wantDataset: DatasetMovies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat, err := NewLoader(tt.setup(t)).Load(context.Background())
			if cat != nil {
				t.Error("Load() returned a catalog on failure")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Load() error = %v, want *LoadError", err)
			}
			if le.Dataset != tt.wantDataset {
				t.Errorf("Dataset = %q, want %q", le.Dataset, tt.wantDataset)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
