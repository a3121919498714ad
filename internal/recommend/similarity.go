// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import "math"

// Cosine returns the cosine similarity of a and b over their common length.
// A zero vector on either side yields 0.
func Cosine(a, b []float64) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// cosineWithNorm is Cosine with the norm of a precomputed.
func cosineWithNorm(a []float64, normA float64, b []float64) float64 {
	if normA == 0 {
		return 0
	}
	n := min(len(a), len(b))
	var dot, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		nb += b[i] * b[i]
	}
	if nb == 0 {
		return 0
	}
	return dot / (normA * math.Sqrt(nb))
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
