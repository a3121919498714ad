// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"crypto/sha1" //nolint:gosec // change detection, not security
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// Fingerprint hashes the ranking inputs. Order of titles and tags does not
// matter; any change of membership or year floor changes the result.
func Fingerprint(titles, tags []string, yearFloor int) string {
	t := slices.Clone(titles)
	slices.Sort(t)
	g := slices.Clone(tags)
	slices.Sort(g)

	raw := strings.Join(t, "|") + "||" + strings.Join(g, "|") + "||" + strconv.Itoa(yearFloor)
	sum := sha1.Sum([]byte(raw)) //nolint:gosec // change detection, not security
	return hex.EncodeToString(sum[:])
}
