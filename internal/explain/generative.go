// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
)

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OverviewSource looks up a plot summary by cleaned title. It returns ""
// when nothing is known and never fails.
type OverviewSource interface {
	Overview(ctx context.Context, title string) string
}

// ErrEmptyCompletion is returned when the backend answered with no text.
var ErrEmptyCompletion = errors.New("empty completion")

// GenerativeExplainer asks a Completer for each explanation.
type GenerativeExplainer struct {
	completer Completer
	overviews OverviewSource
	timeout   time.Duration
}

// NewGenerativeExplainer creates a generative explainer. overviews may be nil.
// timeout bounds each call, including the overview lookup; zero means none.
func NewGenerativeExplainer(completer Completer, overviews OverviewSource, timeout time.Duration) *GenerativeExplainer {
	return &GenerativeExplainer{completer: completer, overviews: overviews, timeout: timeout}
}

// Strategy implements Explainer.
func (g *GenerativeExplainer) Strategy() string { return StrategyGenerative }

// Explain implements Explainer. Failures produce Fallback(err).
//
//nolint:gocritic // hugeParam: Candidate passed by value per interface
func (g *GenerativeExplainer) Explain(ctx context.Context, c Candidate) string {
	start := time.Now()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	overview := ""
	if g.overviews != nil {
		overview = g.overviews.Overview(ctx, catalog.CleanTitle(c.Title))
	}

	text, err := g.completer.Complete(ctx, BuildPrompt(c, overview))
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ErrEmptyCompletion
		}
	}
	if err != nil {
		metrics.RecordExplanation(StrategyGenerative, time.Since(start), true)
		logging.Ctx(ctx).Warn().Err(err).Int("movie_id", c.ID).Msg("explanation generation failed, using fallback")
		return Fallback(err)
	}

	metrics.RecordExplanation(StrategyGenerative, time.Since(start), false)
	return text
}

// BuildPrompt renders the generation prompt for c.
//
//nolint:gocritic // hugeParam: Candidate is read-only here
func BuildPrompt(c Candidate, overview string) string {
	year := "unknown"
	if c.Year > 0 {
		year = fmt.Sprint(c.Year)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Explain in 3 sentences why the movie %q is recommended.\n", c.Title)
	fmt.Fprintf(&b, "Year: %s\n", year)
	fmt.Fprintf(&b, "Genres: %s\n", strings.Join(c.Genres, "|"))
	fmt.Fprintf(&b, "Average rating: %.1f\n", c.AvgRating)
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Requested tags: %s\n", strings.Join(c.Tags, ", "))
	}
	fmt.Fprintf(&b, "Plot: %s\n", overview)
	fmt.Fprintf(&b, "Trust score: %s (%s)\n", TrustPercent(c.Similarity), TrustLevel(c.Similarity))
	b.WriteString("The explanation should be easy to understand and friendly, relate to the user's preferences, " +
		"and stress \"similar but different\". At most 3-4 sentences or 50 words.")
	return b.String()
}
