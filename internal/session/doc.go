// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package session owns per-user browsing state and drives the
selection, ranking and "load more" flow.

# State Machine

	selecting --(5th title chosen)--> ranking
	ranking   --(a title removed)---> selecting

In the ranking phase every render recomputes the selection fingerprint
(sorted titles, sorted tags and year floor). When it differs from the stored
one, the reveal count goes back to Pager.Initial and the explanation cache is
emptied before the ranked list is sliced. Load more advances the reveal count
by Pager.Step, clamped to the number of ranked candidates.

# Storage

Sessions are plain values persisted through a Store:

  - MemoryStore: process-local map (default)
  - BadgerStore: embedded BadgerDB, survives restarts
  - RedisStore: shared between replicas, expiry handled by Redis

The Controller serializes operations on one session id, so stores need no
read-modify-write transactions.
*/
package session
