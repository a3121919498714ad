// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Store persists sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error

	// Prune removes sessions last updated before cutoff and returns how
	// many were removed.
	Prune(ctx context.Context, cutoff time.Time) (int, error)

	Close() error
}

// Store backends.
const (
	StoreMemory = "memory"
	StoreBadger = "badger"
	StoreRedis  = "redis"
)

// StoreConfig selects a backend.
type StoreConfig struct {
	Backend       string
	Path          string // badger
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// OpenStore opens the configured backend.
//
//nolint:gocritic // hugeParam: config read once at startup
func OpenStore(ctx context.Context, cfg StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", StoreMemory:
		return NewMemoryStore(), nil
	case StoreBadger:
		return OpenBadgerStore(cfg.Path, cfg.TTL)
	case StoreRedis:
		return OpenRedisStore(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Backend)
	}
}
