// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"context"
	"sync"
	"sync/atomic"
)

// LoadFunc produces a catalog, typically (*Loader).Load.
type LoadFunc func(ctx context.Context) (*Catalog, error)

// Source memoizes a single load for the process lifetime. The first result,
// success or failure, is returned to every caller.
type Source struct {
	load  LoadFunc
	once  sync.Once
	ready atomic.Bool
	cat   *Catalog
	err   error
}

// NewSource wraps load.
func NewSource(load LoadFunc) *Source {
	return &Source{load: load}
}

// Catalog returns the loaded catalog, loading it on first call. Concurrent
// first calls block until the single load finishes.
func (s *Source) Catalog(ctx context.Context) (*Catalog, error) {
	s.once.Do(func() {
		s.cat, s.err = s.load(ctx)
		s.ready.Store(s.err == nil)
	})
	return s.cat, s.err
}

// Ready reports whether a successful load has completed.
func (s *Source) Ready() bool {
	return s.ready.Load()
}
