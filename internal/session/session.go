// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/moviemate/internal/explain"
)

// Selection is what the user has chosen.
type Selection struct {
	Titles    []string `json:"titles"`
	Tags      []string `json:"tags"`
	YearFloor int      `json:"year_floor"`
}

// Session is one user's browsing state.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Selection Selection `json:"selection"`

	// Fingerprint of the selection last rendered in the ranking phase.
	Fingerprint string `json:"fingerprint"`
	Reveal      int    `json:"reveal"`

	Explanations explain.Cache `json:"explanations"`
}

// New creates a session with a random id.
func New(yearFloor int, reveal int, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Selection: Selection{YearFloor: yearFloor},
		Reveal:    reveal,
	}
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	c.Selection.Titles = slices.Clone(s.Selection.Titles)
	c.Selection.Tags = slices.Clone(s.Selection.Tags)
	if s.Explanations.Entries != nil {
		c.Explanations.Entries = make(map[int]string, len(s.Explanations.Entries))
		for k, v := range s.Explanations.Entries {
			c.Explanations.Entries[k] = v
		}
	}
	return &c
}
