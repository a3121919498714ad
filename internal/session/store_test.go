// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func newInMemoryBadger(t *testing.T) *BadgerStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerStore(db, time.Hour)
}

// exerciseStore runs the shared Store contract.
func exerciseStore(t *testing.T, store Store, supportsPrune bool) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(unknown) error = %v, want ErrNotFound", err)
	}

	fresh := New(1999, 3, now)
	fresh.Selection.Titles = []string{"Heat (1995)"}
	fresh.Explanations.Put("fp", 42, "because")
	stale := New(1999, 3, now.Add(-2*time.Hour))

	for _, s := range []*Session{fresh, stale} {
		if err := store.Put(ctx, s); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	got, err := store.Get(ctx, fresh.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Selection.Titles[0] != "Heat (1995)" || got.Selection.YearFloor != 1999 {
		t.Errorf("Get() selection = %+v", got.Selection)
	}
	if text, ok := got.Explanations.Get("fp", 42); !ok || text != "because" {
		t.Errorf("cached explanation = %q, %v; want because", text, ok)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}

	if supportsPrune {
		n, err := store.Prune(ctx, now.Add(-time.Hour))
		if err != nil {
			t.Fatalf("Prune() error = %v", err)
		}
		if n != 1 {
			t.Errorf("Prune() = %d, want 1", n)
		}
		if _, err := store.Get(ctx, stale.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("stale session still present: %v", err)
		}
	}

	if err := store.Delete(ctx, fresh.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, fresh.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, fresh.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemoryStore(), true)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemoryStore()
	s := New(1999, 3, time.Now())
	s.Selection.Titles = []string{"A"}
	_ = m.Put(ctx, s)

	s.Selection.Titles[0] = "changed"
	got, _ := m.Get(ctx, s.ID)
	if got.Selection.Titles[0] != "A" {
		t.Errorf("stored title = %q, want A", got.Selection.Titles[0])
	}
}

func TestBadgerStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, newInMemoryBadger(t), true)
}

func TestBadgerStore_RunGC(t *testing.T) {
	t.Parallel()
	store := newInMemoryBadger(t)
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestBadgerStore_PruneCanceled(t *testing.T) {
	t.Parallel()
	store := newInMemoryBadger(t)
	_ = store.Put(context.Background(), New(1999, 3, time.Now().Add(-time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Prune(ctx, time.Now()); !errors.Is(err, context.Canceled) {
		t.Errorf("Prune() error = %v, want context.Canceled", err)
	}
}

func TestOpenBadgerStore_OnDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenBadgerStore(dir, 0)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	s := New(2001, 3, time.Now())
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadgerStore(dir, 0)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.Selection.YearFloor != 2001 {
		t.Errorf("YearFloor = %d, want 2001", got.Selection.YearFloor)
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := OpenStore(ctx, StoreConfig{})
	if err != nil {
		t.Fatalf("OpenStore(default) error = %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("default store = %T, want *MemoryStore", s)
	}

	if _, err := OpenStore(ctx, StoreConfig{Backend: StoreBadger}); err == nil {
		t.Error("badger without path: error = nil")
	}
	if _, err := OpenStore(ctx, StoreConfig{Backend: "etcd"}); err == nil {
		t.Error("unknown backend: error = nil")
	}
}

// TestRedisStore needs a live server; set REDIS_ADDR to run it.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	store, err := OpenRedisStore(context.Background(), RedisOptions{Addr: addr, TTL: time.Minute})
	if err != nil {
		t.Fatalf("OpenRedisStore() error = %v", err)
	}
	defer store.Close()
	exerciseStore(t, store, false)
}
