// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import "github.com/tomtom215/moviemate/internal/metrics"

// Cache holds explanations for one selection fingerprint, keyed by movie id.
// It is plain data so it can be persisted with the session; the session
// controller serializes access.
type Cache struct {
	Fingerprint string         `json:"fingerprint"`
	Entries     map[int]string `json:"entries,omitempty"`
}

// Get returns the explanation for movieID under fingerprint. Entries stored
// under another fingerprint are never returned.
func (c *Cache) Get(fingerprint string, movieID int) (string, bool) {
	if c.Fingerprint != fingerprint {
		metrics.RecordExplanationCache(false)
		return "", false
	}
	text, ok := c.Entries[movieID]
	metrics.RecordExplanationCache(ok)
	return text, ok
}

// Put stores text for movieID. A new fingerprint drops every older entry.
func (c *Cache) Put(fingerprint string, movieID int, text string) {
	if c.Fingerprint != fingerprint || c.Entries == nil {
		c.Reset(fingerprint)
	}
	c.Entries[movieID] = text
}

// Reset empties the cache and binds it to fingerprint.
func (c *Cache) Reset(fingerprint string) {
	c.Fingerprint = fingerprint
	c.Entries = make(map[int]string)
}

// Len returns the number of cached explanations.
func (c *Cache) Len() int { return len(c.Entries) }
