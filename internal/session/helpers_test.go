// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/explain"
	"github.com/tomtom215/moviemate/internal/features"
	"github.com/tomtom215/moviemate/internal/recommend"
)

// testCatalog has five selectable action movies and seven candidates from
// 2006 to 2012.
func testCatalog() *catalog.Catalog {
	movies := []catalog.Movie{
		{ID: 1, Title: "Sel One (2001)", Year: 2001, Genres: []string{"Action"}},
		{ID: 2, Title: "Sel Two (2002)", Year: 2002, Genres: []string{"Action"}},
		{ID: 3, Title: "Sel Three (2003)", Year: 2003, Genres: []string{"Action", "Comedy"}},
		{ID: 4, Title: "Sel Four (2004)", Year: 2004, Genres: []string{"Action", "Drama"}},
		{ID: 5, Title: "Sel Five (2005)", Year: 2005, Genres: []string{"Action"}},
		{ID: 6, Title: "Cand Six (2006)", Year: 2006, Genres: []string{"Action", "Comedy"}},
		{ID: 7, Title: "Cand Seven (2007)", Year: 2007, Genres: []string{"Action"}},
		{ID: 8, Title: "Cand Eight (2008)", Year: 2008, Genres: []string{"Comedy"}},
		{ID: 9, Title: "Cand Nine (2009)", Year: 2009, Genres: []string{"Drama"}},
		{ID: 10, Title: "Cand Ten (2010)", Year: 2010, Genres: []string{"Action", "Drama"}},
		{ID: 11, Title: "Cand Eleven (2011)", Year: 2011, Genres: []string{"Action", "Comedy", "Drama"}},
		{ID: 12, Title: "Cand Twelve (2012)", Year: 2012, Genres: []string{"Horror"}},
	}
	tags := []catalog.Tag{{ID: 1, Name: "explosions"}}
	scores := []catalog.TagScore{{MovieID: 7, TagID: 1, Relevance: 1}}
	return catalog.New(movies, tags, scores, nil)
}

var fiveTitles = []string{
	"Sel One (2001)", "Sel Two (2002)", "Sel Three (2003)", "Sel Four (2004)", "Sel Five (2005)",
}

// countingExplainer returns "why <id>" and counts calls.
type countingExplainer struct {
	calls atomic.Int32
}

func (e *countingExplainer) Explain(_ context.Context, c explain.Candidate) string {
	e.calls.Add(1)
	return fmt.Sprintf("why %d", c.ID)
}

func (e *countingExplainer) Strategy() string { return "counting" }

// recordingPosters remembers the titles it was asked for.
type recordingPosters struct {
	mu     sync.Mutex
	titles []string
	url    string
}

func (p *recordingPosters) PosterURL(_ context.Context, title string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titles = append(p.titles, title)
	return p.url
}

type fixture struct {
	ctrl      *Controller
	store     *MemoryStore
	explainer *countingExplainer
	posters   *recordingPosters
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := testCatalog()
	engine, err := recommend.NewEngine(cat, features.NewEncoder(cat), recommend.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	f := &fixture{
		store:     NewMemoryStore(),
		explainer: &countingExplainer{},
		posters:   &recordingPosters{},
	}
	opts := DefaultOptions()
	opts.DefaultYearFloor = 2000
	opts.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	f.ctrl, err = NewController(engine, f.explainer, f.posters, f.store, opts)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return f
}

// ranked starts a session and selects the five action titles.
func (f *fixture) ranked(t *testing.T, yearFloor int) *View {
	t.Helper()
	ctx := context.Background()
	v, err := f.ctrl.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	v, err = f.ctrl.UpdateSelection(ctx, v.SessionID, Selection{Titles: fiveTitles, YearFloor: yearFloor})
	if err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}
	return v
}

func itemIDs(items []Item) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
