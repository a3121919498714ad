// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSourceLoadsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := NewSource(func(context.Context) (*Catalog, error) {
		calls.Add(1)
		return New(sampleMovies(), nil, nil, nil), nil
	})

	if src.Ready() {
		t.Error("Ready() = true before first load")
	}

	var wg sync.WaitGroup
	results := make([]*Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cat, err := src.Catalog(context.Background())
			if err != nil {
				t.Errorf("Catalog() error = %v", err)
			}
			results[i] = cat
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("load calls = %d, want 1", got)
	}
	for i, cat := range results {
		if cat != results[0] {
			t.Errorf("result %d is a different catalog instance", i)
		}
	}
	if !src.Ready() {
		t.Error("Ready() = false after successful load")
	}
}

func TestSourceErrorIsSticky(t *testing.T) {
	t.Parallel()

	boom := &LoadError{Dataset: DatasetMovies, Err: ErrMarkup}
	var calls atomic.Int32
	src := NewSource(func(context.Context) (*Catalog, error) {
		calls.Add(1)
		return nil, boom
	})

	for i := 0; i < 3; i++ {
		if _, err := src.Catalog(context.Background()); !errors.Is(err, ErrMarkup) {
			t.Errorf("Catalog() error = %v, want ErrMarkup", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("load calls = %d, want 1", calls.Load())
	}
	if src.Ready() {
		t.Error("Ready() = true after failed load")
	}
}
