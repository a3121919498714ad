// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSniffDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   rune
	}{
		{"comma", "movieId,title,genres", ','},
		{"semicolon", "movieId;title;genres", ';'},
		{"tab", "movieId\ttitle\tgenres", '\t'},
		{"pipe", "movieId|title|genres", '|'},
		{"tie prefers comma", "a;b,c", ','},
		{"no candidates", "movieId", ','},
		{"majority wins", "a;b;c,d", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sniffDelimiter(tt.header); got != tt.want {
				t.Errorf("sniffDelimiter(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestLooksLikeMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		probe string
		want  bool
	}{
		{"<!DOCTYPE html><html><body>quota exceeded</body></html>", true},
		{"\n\n<HTML lang=en>", true},
		{"movieId,title\n1,<html> (2001)", true},
		{"movieId,title,genres\n1,Heat (1995),Action", false},
	}
	for _, tt := range tests {
		if got := looksLikeMarkup([]byte(tt.probe)); got != tt.want {
			t.Errorf("looksLikeMarkup(%q) = %v, want %v", tt.probe, got, tt.want)
		}
	}
}

func TestNormalizeColumn(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"movieId", "movie_id", "Movie ID", " MOVIE-ID "} {
		if got := normalizeColumn(in); got != "movieid" {
			t.Errorf("normalizeColumn(%q) = %q, want %q", in, got, "movieid")
		}
	}
}

func TestOpenTable(t *testing.T) {
	t.Parallel()

	t.Run("strips BOM and sniffs semicolon", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "movies.csv", "\ufeffmovieId;title;genres\n1;Heat (1995);Action|Crime\n")

		tbl, closer, err := openTable(path, 0)
		if err != nil {
			t.Fatalf("openTable() error = %v", err)
		}
		defer closer.Close()

		if idx := tbl.column("movieId"); idx != 0 {
			t.Errorf("column(movieId) = %d, want 0", idx)
		}

		var rows [][]string
		err = tbl.each(context.Background(), func(rec []string) error {
			rows = append(rows, append([]string(nil), rec...))
			return nil
		})
		if err != nil {
			t.Fatalf("each() error = %v", err)
		}
		if len(rows) != 1 || rows[0][1] != "Heat (1995)" {
			t.Errorf("rows = %v, want one row titled Heat (1995)", rows)
		}
	})

	t.Run("rejects markup", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "movies.csv", "<!doctype html>\n<html><body>Sign in</body></html>")

		_, _, err := openTable(path, 0)
		if !errors.Is(err, ErrMarkup) {
			t.Errorf("openTable() error = %v, want ErrMarkup", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "movies.csv", "")

		if _, _, err := openTable(path, 0); err == nil {
			t.Error("openTable() error = nil, want error for empty file")
		}
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "movies.csv", "id,name\n1,Heat\n")

		tbl, closer, err := openTable(path, 0)
		if err != nil {
			t.Fatalf("openTable() error = %v", err)
		}
		defer closer.Close()

		_, err = tbl.require("title")
		if !errors.Is(err, ErrMissingColumn) {
			t.Errorf("require(title) error = %v, want ErrMissingColumn", err)
		}
	})

	t.Run("row errors carry line numbers", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "r.csv", "movieId,rating\n1,4.0\nx,3.5\n")

		tbl, closer, err := openTable(path, 0)
		if err != nil {
			t.Fatalf("openTable() error = %v", err)
		}
		defer closer.Close()

		err = tbl.each(context.Background(), func(rec []string) error {
			_, err := parseInt(rec, 0, "movie id")
			return err
		})
		if err == nil || !strings.Contains(err.Error(), "line 3") {
			t.Errorf("each() error = %v, want mention of line 3", err)
		}
	})
}
