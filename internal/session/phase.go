// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

// Phase is the session state.
type Phase string

const (
	// PhaseSelecting means fewer than the required titles are chosen.
	PhaseSelecting Phase = "selecting"
	// PhaseRanking means the selection is complete and results are shown.
	PhaseRanking Phase = "ranking"
)

// PhaseFor returns the phase for a selection of n titles.
func PhaseFor(n, required int) Phase {
	if n >= required {
		return PhaseRanking
	}
	return PhaseSelecting
}
