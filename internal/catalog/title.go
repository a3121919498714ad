// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearGroupRe  = regexp.MustCompile(`\((\d{4})\)`)
	yearStripRe  = regexp.MustCompile(`\s*\(\d{4}\)`)
	noGenreToken = "(no genres listed)"
)

// YearFromTitle extracts the release year from a "(YYYY)" group in the title.
// When several groups exist the last one wins, since the release year trails
// the title. Returns 0 when none is found.
func YearFromTitle(title string) int {
	matches := yearGroupRe.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return 0
	}
	year, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0
	}
	return year
}

// CleanTitle strips "(YYYY)" groups so the title can be used as a search
// query against external services.
//
//	CleanTitle("Heat (1995)") == "Heat"
func CleanTitle(title string) string {
	return strings.TrimSpace(yearStripRe.ReplaceAllString(title, ""))
}

// ParseGenres splits a pipe-delimited genre field. Blank tokens and the
// MovieLens "(no genres listed)" marker are dropped, so an unknown genre set
// is the empty slice.
func ParseGenres(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, "|")
	genres := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, noGenreToken) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		genres = append(genres, p)
	}
	return genres
}
