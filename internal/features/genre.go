// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package features

import (
	"sort"

	"github.com/tomtom215/moviemate/internal/catalog"
)

// GenreSpace is the ordered set of genre columns.
type GenreSpace struct {
	columns []string
	index   map[string]int
}

// NewGenreSpace collects the distinct genre tokens of movies, sorted.
func NewGenreSpace(movies []catalog.Movie) *GenreSpace {
	index := make(map[string]int)
	for i := range movies {
		for _, g := range movies[i].Genres {
			index[g] = 0
		}
	}
	columns := make([]string, 0, len(index))
	for g := range index {
		columns = append(columns, g)
	}
	sort.Strings(columns)
	for i, g := range columns {
		index[g] = i
	}
	return &GenreSpace{columns: columns, index: index}
}

// Columns returns the genre tokens in column order.
func (s *GenreSpace) Columns() []string { return s.columns }

// Len returns the number of columns.
func (s *GenreSpace) Len() int { return len(s.columns) }

// Index returns the column of genre g.
func (s *GenreSpace) Index(g string) (int, bool) {
	i, ok := s.index[g]
	return i, ok
}

// Encode one-hot encodes a genre set. Tokens outside the space are ignored.
func (s *GenreSpace) Encode(genres []string) []float64 {
	row := make([]float64, len(s.columns))
	for _, g := range genres {
		if i, ok := s.index[g]; ok {
			row[i] = 1
		}
	}
	return row
}

// GenreMatrix holds the one-hot genre row of every catalog movie.
type GenreMatrix struct {
	space *GenreSpace
	rows  map[int][]float64
	zero  []float64
}

// NewGenreMatrix encodes every movie against space.
func NewGenreMatrix(space *GenreSpace, movies []catalog.Movie) *GenreMatrix {
	m := &GenreMatrix{
		space: space,
		rows:  make(map[int][]float64, len(movies)),
		zero:  make([]float64, space.Len()),
	}
	// One backing array keeps the rows contiguous.
	backing := make([]float64, len(movies)*space.Len())
	for i := range movies {
		row := backing[i*space.Len() : (i+1)*space.Len() : (i+1)*space.Len()]
		for _, g := range movies[i].Genres {
			if c, ok := space.index[g]; ok {
				row[c] = 1
			}
		}
		m.rows[movies[i].ID] = row
	}
	return m
}

// Space returns the column definition.
func (m *GenreMatrix) Space() *GenreSpace { return m.space }

// Row returns the genre row of movieID, or the zero row for unknown ids.
func (m *GenreMatrix) Row(movieID int) []float64 {
	if row, ok := m.rows[movieID]; ok {
		return row
	}
	return m.zero
}
