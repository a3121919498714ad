// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package features

import (
	"sort"

	"github.com/tomtom215/moviemate/internal/catalog"
)

// TagMatrix is the dense movie x tag relevance pivot. Only movies with at
// least one score own a row; every other movie reads as the zero row.
type TagMatrix struct {
	columns []int       // tag ids, ascending
	index   map[int]int // tag id -> column
	rows    map[int][]float64
	zero    []float64
}

// NewTagMatrix pivots scores into rows over the tags vocabulary. Scores for
// tags outside the vocabulary are dropped. When a pair repeats, the last
// score wins.
func NewTagMatrix(tags []catalog.Tag, scores []catalog.TagScore) *TagMatrix {
	columns := make([]int, 0, len(tags))
	index := make(map[int]int, len(tags))
	for _, t := range tags {
		if _, dup := index[t.ID]; dup {
			continue
		}
		index[t.ID] = 0
		columns = append(columns, t.ID)
	}
	sort.Ints(columns)
	for i, id := range columns {
		index[id] = i
	}

	m := &TagMatrix{
		columns: columns,
		index:   index,
		rows:    make(map[int][]float64),
		zero:    make([]float64, len(columns)),
	}
	for _, s := range scores {
		c, ok := index[s.TagID]
		if !ok {
			continue
		}
		row, ok := m.rows[s.MovieID]
		if !ok {
			row = make([]float64, len(columns))
			m.rows[s.MovieID] = row
		}
		row[c] = s.Relevance
	}
	return m
}

// Columns returns the tag ids in column order.
func (m *TagMatrix) Columns() []int { return m.columns }

// Len returns the number of columns.
func (m *TagMatrix) Len() int { return len(m.columns) }

// Movies returns how many movies carry at least one relevance score.
func (m *TagMatrix) Movies() int { return len(m.rows) }

// Row returns the relevance row of movieID, zero-filled.
func (m *TagMatrix) Row(movieID int) []float64 {
	if row, ok := m.rows[movieID]; ok {
		return row
	}
	return m.zero
}

// Reindex returns one row per id, in order, zero-filled for movies absent
// from the pivot.
func (m *TagMatrix) Reindex(movieIDs []int) [][]float64 {
	out := make([][]float64, len(movieIDs))
	for i, id := range movieIDs {
		out[i] = m.Row(id)
	}
	return out
}

// Indicator returns a fresh vector with 1 at the columns of tagIDs. Ids
// outside the vocabulary are ignored.
func (m *TagMatrix) Indicator(tagIDs []int) []float64 {
	v := make([]float64, len(m.columns))
	for _, id := range tagIDs {
		if c, ok := m.index[id]; ok {
			v[c] = 1
		}
	}
	return v
}
