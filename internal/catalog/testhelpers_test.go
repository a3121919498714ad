// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates name under t.TempDir with the given content.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func sampleMovies() []Movie {
	return []Movie{
		{ID: 1, Title: "Toy Story (1995)", Year: 1995, Genres: []string{"Animation", "Comedy"}},
		{ID: 2, Title: "Heat (1995)", Year: 1995, Genres: []string{"Action", "Crime"}},
		{ID: 3, Title: "The Matrix (1999)", Year: 1999, Genres: []string{"Action", "Sci-Fi"}},
		{ID: 4, Title: "Amelie (2001)", Year: 2001, Genres: []string{"Comedy", "Romance"}},
		{ID: 5, Title: "Memento (2000)", Year: 2000, Genres: []string{"Mystery", "Thriller"}},
	}
}
