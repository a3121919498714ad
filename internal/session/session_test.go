// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/moviemate/internal/metrics"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	base := Fingerprint([]string{"B", "A"}, []string{"y", "x"}, 1999)

	if got := Fingerprint([]string{"A", "B"}, []string{"x", "y"}, 1999); got != base {
		t.Errorf("reordered fingerprint = %s, want %s", got, base)
	}
	if len(base) != 40 {
		t.Errorf("len(fingerprint) = %d, want 40 hex chars", len(base))
	}

	changes := []struct {
		name      string
		titles    []string
		tags      []string
		yearFloor int
	}{
		{"title removed", []string{"A"}, []string{"x", "y"}, 1999},
		{"tag added", []string{"A", "B"}, []string{"x", "y", "z"}, 1999},
		{"year changed", []string{"A", "B"}, []string{"x", "y"}, 2000},
		{"tag moved to titles", []string{"A", "B", "x"}, []string{"y"}, 1999},
	}
	for _, tt := range changes {
		if got := Fingerprint(tt.titles, tt.tags, tt.yearFloor); got == base {
			t.Errorf("%s: fingerprint unchanged", tt.name)
		}
	}
}

func TestFingerprint_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	titles := []string{"B", "A"}
	Fingerprint(titles, nil, 0)
	if titles[0] != "B" {
		t.Errorf("titles = %v, input was sorted in place", titles)
	}
}

func TestPager_Clamp(t *testing.T) {
	t.Parallel()
	p := DefaultPager()
	tests := []struct{ reveal, total, want int }{
		{3, 10, 3},
		{3, 2, 2},
		{3, 0, 0},
		{-1, 5, 0},
	}
	for _, tt := range tests {
		if got := p.Clamp(tt.reveal, tt.total); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.reveal, tt.total, got, tt.want)
		}
	}
}

func TestPager_LoadMore(t *testing.T) {
	t.Parallel()
	p := DefaultPager()
	tests := []struct {
		name         string
		reveal       int
		total        int
		want         int
		wantAdvanced bool
	}{
		{"next page", 3, 10, 6, true},
		{"partial page", 6, 7, 7, true},
		{"at end", 7, 7, 7, false},
		{"empty", 3, 0, 0, false},
		{"reveal beyond total", 9, 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, advanced := p.LoadMore(tt.reveal, tt.total)
			if got != tt.want || advanced != tt.wantAdvanced {
				t.Errorf("LoadMore(%d, %d) = (%d, %v), want (%d, %v)",
					tt.reveal, tt.total, got, advanced, tt.want, tt.wantAdvanced)
			}
		})
	}
}

func TestPager_Sync(t *testing.T) {
	p := DefaultPager()
	s := &Session{Fingerprint: "old", Reveal: 9}
	s.Explanations.Put("old", 1, "cached")

	before := testutil.ToFloat64(metrics.PaginationResets)

	if !p.Sync(s, "new") {
		t.Fatal("Sync() = false, want reset on new fingerprint")
	}
	if s.Reveal != 3 || s.Fingerprint != "new" {
		t.Errorf("after Sync: reveal=%d fingerprint=%q, want 3/new", s.Reveal, s.Fingerprint)
	}
	if s.Explanations.Len() != 0 {
		t.Errorf("explanation cache len = %d, want 0", s.Explanations.Len())
	}
	if p.Sync(s, "new") {
		t.Error("Sync() = true for unchanged fingerprint")
	}
	if delta := testutil.ToFloat64(metrics.PaginationResets) - before; delta != 1 {
		t.Errorf("pagination resets delta = %v, want 1", delta)
	}
}

func TestPhaseFor(t *testing.T) {
	t.Parallel()
	for n, want := range map[int]Phase{0: PhaseSelecting, 4: PhaseSelecting, 5: PhaseRanking} {
		if got := PhaseFor(n, 5); got != want {
			t.Errorf("PhaseFor(%d, 5) = %s, want %s", n, got, want)
		}
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	t.Parallel()
	s := &Session{Selection: Selection{Titles: []string{"A"}}}
	s.Explanations.Put("fp", 1, "x")

	c := s.Clone()
	c.Selection.Titles[0] = "B"
	c.Explanations.Put("fp", 2, "y")

	if s.Selection.Titles[0] != "A" {
		t.Error("clone shares titles with original")
	}
	if s.Explanations.Len() != 1 {
		t.Errorf("original cache len = %d, want 1", s.Explanations.Len())
	}
}
