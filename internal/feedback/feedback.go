// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package feedback

import (
	"context"
	"time"
)

// Record is one survey submission.
type Record struct {
	ID           string            `json:"id"`
	SessionID    string            `json:"session_id" validate:"required"`
	CreatedAt    time.Time         `json:"created_at"`
	Titles       []string          `json:"titles"`
	Tags         []string          `json:"tags"`
	YearFloor    int               `json:"year_floor"`
	Fingerprint  string            `json:"fingerprint"`
	Revealed     int               `json:"revealed" validate:"gte=0"`
	Satisfaction int               `json:"satisfaction" validate:"min=1,max=5"`
	Comment      string            `json:"comment,omitempty" validate:"max=2000"`
	Answers      map[string]string `json:"answers,omitempty" validate:"max=20,dive,keys,max=64,endkeys,max=1000"`
}

// Store is an append-only feedback log.
type Store interface {
	Append(ctx context.Context, r *Record) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
