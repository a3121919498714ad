// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package features

import (
	"fmt"
	"slices"
)

// Feature space names.
const (
	SpaceGenre = "genre"
	SpaceTag   = "tag"
)

// EncodingMismatchError reports that a vector was encoded against a
// different column set than the one it is compared with. Align has already
// repaired the vector when this is returned; callers log it and continue.
type EncodingMismatchError struct {
	Space   string
	Missing int // target columns absent from the source, zero-filled
	Extra   int // source columns absent from the target, dropped
	Length  int // source vector length when it disagreed with its columns
}

func (e *EncodingMismatchError) Error() string {
	msg := fmt.Sprintf("features: %s encoding mismatch: %d missing, %d extra columns", e.Space, e.Missing, e.Extra)
	if e.Length > 0 {
		msg += fmt.Sprintf(", vector length %d", e.Length)
	}
	return msg
}

// Align reindexes vec from the from column set onto the to column set.
// Columns missing from from are zero-filled and extra columns dropped. When
// the sets are identical vec is returned unchanged with a nil error;
// otherwise the repaired vector is returned with an *EncodingMismatchError.
func Align[K comparable](space string, vec []float64, from, to []K) ([]float64, error) {
	if len(vec) == len(from) && slices.Equal(from, to) {
		return vec, nil
	}

	mismatch := &EncodingMismatchError{Space: space}
	if len(vec) != len(from) {
		mismatch.Length = len(vec)
	}

	pos := make(map[K]int, len(from))
	for i, k := range from {
		pos[k] = i
	}
	out := make([]float64, len(to))
	seen := 0
	for j, k := range to {
		i, ok := pos[k]
		if !ok {
			mismatch.Missing++
			continue
		}
		seen++
		if i < len(vec) {
			out[j] = vec[i]
		}
	}
	mismatch.Extra = len(from) - seen

	// Same columns, different order: repaired without loss, still reported.
	return out, mismatch
}
