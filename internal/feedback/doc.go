// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

// Package feedback persists survey answers and interaction snapshots that
// users submit after seeing their recommendations.
//
// Records are append-only. Each one captures the selection that produced
// the recommendations (titles, tags, year floor and fingerprint), how many
// results were revealed, a 1-5 satisfaction score, an optional comment and
// free-form answers keyed by question id.
//
// SQLiteStore uses the pure-Go modernc.org/sqlite driver, so the binary
// stays CGO-free.
package feedback
