// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/moviemate/internal/metrics"
)

// Rules holds the thresholds that decide which categories apply.
type Rules struct {
	MinGenreSimilarity float64 // genre
	MinTagSimilarity   float64 // tag
	MinAvgRating       float64 // rating
	MinRatingCount     int     // popularity
}

// DefaultRules returns the built-in thresholds. Era applies whenever the
// year is known.
func DefaultRules() Rules {
	return Rules{
		MinGenreSimilarity: 0.5,
		MinTagSimilarity:   0.3,
		MinAvgRating:       3.8,
		MinRatingCount:     1000,
	}
}

// TemplateExplainer assembles explanations from phrase pools.
type TemplateExplainer struct {
	phrases Phrases
	rules   Rules

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTemplateExplainer creates a template explainer drawing phrases from src.
// A nil src seeds from the clock.
func NewTemplateExplainer(phrases Phrases, rules Rules, src rand.Source) *TemplateExplainer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &TemplateExplainer{
		phrases: phrases,
		rules:   rules,
		rng:     rand.New(src), //nolint:gosec // phrase variety, not security
	}
}

// Strategy implements Explainer.
func (t *TemplateExplainer) Strategy() string { return StrategyTemplate }

// Categories returns the rule categories c satisfies, in output order.
//
//nolint:gocritic // hugeParam: Candidate is read-only here
func (t *TemplateExplainer) Categories(c Candidate) []string {
	var cats []string
	if c.GenreSimilarity >= t.rules.MinGenreSimilarity && len(c.Genres) > 0 {
		cats = append(cats, "genre")
	}
	if len(c.Tags) > 0 && c.TagSimilarity >= t.rules.MinTagSimilarity {
		cats = append(cats, "tag")
	}
	if c.RatingCount > 0 && c.AvgRating >= t.rules.MinAvgRating {
		cats = append(cats, "rating")
	}
	if c.RatingCount >= t.rules.MinRatingCount {
		cats = append(cats, "popularity")
	}
	if c.Year > 0 {
		cats = append(cats, "era")
	}
	return cats
}

// Explain implements Explainer.
//
//nolint:gocritic // hugeParam: Candidate passed by value per interface
func (t *TemplateExplainer) Explain(_ context.Context, c Candidate) string {
	start := time.Now()
	vars := placeholders(c)

	var fragments []string
	for _, cat := range t.Categories(c) {
		if f := t.pick(t.pool(cat)); f != "" {
			fragments = append(fragments, vars.Replace(f))
		}
	}
	if len(fragments) == 0 {
		if f := t.pick(t.phrases.Generic); f != "" {
			fragments = append(fragments, vars.Replace(f))
		}
	}

	var b strings.Builder
	if len(fragments) > 0 {
		b.WriteString(capitalize(strings.Join(fragments, t.phrases.Connector)))
		b.WriteString(". ")
	}
	b.WriteString(vars.Replace(t.pick(t.phrases.Trust[trustKey(TrustLevel(c.Similarity))])))

	metrics.RecordExplanation(StrategyTemplate, time.Since(start), false)
	return strings.TrimSpace(b.String())
}

func (t *TemplateExplainer) pool(category string) []string {
	switch category {
	case "genre":
		return t.phrases.Genre
	case "tag":
		return t.phrases.Tag
	case "rating":
		return t.phrases.Rating
	case "popularity":
		return t.phrases.Popularity
	case "era":
		return t.phrases.Era
	default:
		return nil
	}
}

func (t *TemplateExplainer) pick(pool []string) string {
	switch len(pool) {
	case 0:
		return ""
	case 1:
		return pool[0]
	}
	t.mu.Lock()
	i := t.rng.Intn(len(pool))
	t.mu.Unlock()
	return pool[i]
}

//nolint:gocritic // hugeParam: Candidate is read-only here
func placeholders(c Candidate) *strings.Replacer {
	level := TrustLevel(c.Similarity)
	decade := ""
	if c.Year > 0 {
		decade = strconv.Itoa(c.Year/10*10) + "s"
	}
	return strings.NewReplacer(
		"{title}", c.Title,
		"{genres}", joinList(c.Genres, 3),
		"{tags}", joinList(c.Tags, 3),
		"{rating}", strconv.FormatFloat(c.AvgRating, 'f', 1, 64),
		"{count}", strconv.Itoa(c.RatingCount),
		"{year}", strconv.Itoa(c.Year),
		"{decade}", decade,
		"{level}", level,
		"{percent}", TrustPercent(c.Similarity),
	)
}

// joinList renders up to limit items as "a, b and c".
func joinList(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
