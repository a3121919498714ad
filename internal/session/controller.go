// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/explain"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
	"github.com/tomtom215/moviemate/internal/recommend"
	"github.com/tomtom215/moviemate/internal/tmdb"
)

// PosterSource resolves a poster URL for a cleaned title, or "" when none
// exists. *tmdb.Client satisfies it.
type PosterSource interface {
	PosterURL(ctx context.Context, title string) string
}

// Options tunes the controller.
type Options struct {
	// Required is the number of titles that completes a selection.
	Required int
	// DefaultYearFloor is used by Start.
	DefaultYearFloor int
	Pager            Pager
	// Concurrency bounds parallel explanation and poster work per render.
	Concurrency int
	Now         func() time.Time
}

// DefaultOptions returns five titles, a 1999 year floor and 3+3 paging.
func DefaultOptions() Options {
	return Options{
		Required:         5,
		DefaultYearFloor: 1999,
		Pager:            DefaultPager(),
		Concurrency:      4,
		Now:              time.Now,
	}
}

// Item is one revealed recommendation.
type Item struct {
	recommend.ScoredMovie
	Explanation string `json:"explanation"`
	PosterURL   string `json:"poster_url"`
}

// View is what a client renders after any operation.
type View struct {
	SessionID   string    `json:"session_id"`
	Phase       Phase     `json:"phase"`
	Selection   Selection `json:"selection"`
	Required    int       `json:"required"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Reveal      int       `json:"reveal"`
	Total       int       `json:"total"`
	CanLoadMore bool      `json:"can_load_more"`
	Items       []Item    `json:"items"`
	Unresolved  []string  `json:"unresolved_titles,omitempty"`
	UnknownTags []string  `json:"unknown_tags,omitempty"`
}

// Controller runs the selection and ranking flow on top of a Store.
//
// # Thread Safety
//
// Operations on the same session id are serialized; different sessions run
// in parallel.
type Controller struct {
	engine    *recommend.Engine
	explainer explain.Explainer
	posters   PosterSource
	store     Store
	opts      Options
	locks     *keyedMutex
	logger    zerolog.Logger
}

// NewController wires the controller. posters may be nil, in which case
// every card gets the placeholder image.
//
//nolint:gocritic // hugeParam: options read once at startup
func NewController(engine *recommend.Engine, explainer explain.Explainer, posters PosterSource, store Store, opts Options) (*Controller, error) {
	if engine == nil || explainer == nil || store == nil {
		return nil, errors.New("session controller requires an engine, an explainer and a store")
	}
	defaults := DefaultOptions()
	if opts.Required <= 0 {
		opts.Required = defaults.Required
	}
	if opts.Pager.Initial <= 0 || opts.Pager.Step <= 0 {
		opts.Pager = defaults.Pager
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaults.Concurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		engine:    engine,
		explainer: explainer,
		posters:   posters,
		store:     store,
		opts:      opts,
		locks:     newKeyedMutex(),
		logger:    logging.WithComponent("session"),
	}, nil
}

// Store returns the backing store.
func (c *Controller) Store() Store { return c.store }

// Start creates and persists an empty session in the selecting phase.
func (c *Controller) Start(ctx context.Context) (*View, error) {
	s := New(c.opts.DefaultYearFloor, c.opts.Pager.Initial, c.opts.Now())
	err := c.store.Put(ctx, s)
	metrics.RecordSessionOperation("start", err)
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	c.logger.Debug().Str("session_id", s.ID).Msg("session started")
	return c.selectingView(s), nil
}

// Render returns the current view, ranking when the selection is complete.
func (c *Controller) Render(ctx context.Context, id string) (*View, error) {
	return c.mutate(ctx, "render", id, func(*Session) bool { return false })
}

// SelectionOption adjusts how UpdateSelection applies a selection.
type SelectionOption func(*selectionUpdate)

type selectionUpdate struct {
	keepYearFloor bool
}

// KeepYearFloor ignores the submitted year floor and keeps the session's
// current one. The floor is read under the session lock.
func KeepYearFloor() SelectionOption {
	return func(u *selectionUpdate) { u.keepYearFloor = true }
}

// UpdateSelection replaces the selection and renders. Titles and tags are
// de-duplicated and truncated to the first five. The session is persisted
// even when the new selection yields no profile.
//
//nolint:gocritic // hugeParam: selection passed by value for immutability
func (c *Controller) UpdateSelection(ctx context.Context, id string, sel Selection, opts ...SelectionOption) (*View, error) {
	var u selectionUpdate
	for _, opt := range opts {
		opt(&u)
	}
	return c.mutate(ctx, "update_selection", id, func(s *Session) bool {
		req := c.engine.Normalize(recommend.Request{Titles: sel.Titles, Tags: sel.Tags})
		floor := sel.YearFloor
		if u.keepYearFloor {
			floor = s.Selection.YearFloor
		}
		s.Selection = Selection{
			Titles:    truncate(req.Titles, c.opts.Required),
			Tags:      req.Tags,
			YearFloor: floor,
		}
		return false
	})
}

// LoadMore reveals the next page. At the end of the list it changes
// nothing.
func (c *Controller) LoadMore(ctx context.Context, id string) (*View, error) {
	return c.mutate(ctx, "load_more", id, func(*Session) bool { return true })
}

// End deletes the session.
func (c *Controller) End(ctx context.Context, id string) error {
	unlock := c.locks.Lock(id)
	defer unlock()

	if _, err := c.store.Get(ctx, id); err != nil {
		metrics.RecordSessionOperation("end", err)
		return err
	}
	err := c.store.Delete(ctx, id)
	metrics.RecordSessionOperation("end", err)
	return err
}

// mutate loads the session under its lock, applies edit, renders and
// persists. edit reports whether this render should advance pagination.
func (c *Controller) mutate(ctx context.Context, op, id string, edit func(*Session) bool) (*View, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	ctx = logging.ContextWithSessionID(ctx, id)

	s, err := c.store.Get(ctx, id)
	if err != nil {
		metrics.RecordSessionOperation(op, err)
		return nil, err
	}

	advance := edit(s)
	view, renderErr := c.render(ctx, s, advance)
	if renderErr != nil && !errors.Is(renderErr, recommend.ErrNoProfile) {
		metrics.RecordSessionOperation(op, renderErr)
		return nil, renderErr
	}

	s.UpdatedAt = c.opts.Now()
	if err := c.store.Put(ctx, s); err != nil {
		metrics.RecordSessionOperation(op, err)
		return nil, fmt.Errorf("persist session: %w", err)
	}
	metrics.RecordSessionOperation(op, nil)
	return view, renderErr
}

func (c *Controller) selectingView(s *Session) *View {
	return &View{
		SessionID: s.ID,
		Phase:     PhaseSelecting,
		Selection: s.Selection,
		Required:  c.opts.Required,
		Reveal:    0,
		Items:     []Item{},
	}
}

// render ranks a complete selection and fills the revealed prefix. In the
// selecting phase it returns the selection only.
func (c *Controller) render(ctx context.Context, s *Session, advance bool) (*View, error) {
	if PhaseFor(len(s.Selection.Titles), c.opts.Required) == PhaseSelecting {
		return c.selectingView(s), nil
	}

	sel := s.Selection
	fp := Fingerprint(sel.Titles, sel.Tags, sel.YearFloor)
	if c.opts.Pager.Sync(s, fp) {
		c.logger.Debug().Str("session_id", s.ID).Str("fingerprint", fp).Msg("selection changed, pagination reset")
	}

	view := &View{
		SessionID:   s.ID,
		Phase:       PhaseRanking,
		Selection:   sel,
		Required:    c.opts.Required,
		Fingerprint: fp,
		Items:       []Item{},
	}

	ranking, err := c.engine.Recommend(ctx, recommend.Request{
		Titles:    sel.Titles,
		Tags:      sel.Tags,
		YearFloor: sel.YearFloor,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNoProfile) {
			view.Unresolved = slices.Clone(sel.Titles)
		}
		return view, err
	}

	total := ranking.Len()
	if advance {
		next, ok := c.opts.Pager.LoadMore(s.Reveal, total)
		metrics.RecordLoadMore(ok)
		if ok {
			s.Reveal = next
		}
	}
	reveal := c.opts.Pager.Clamp(s.Reveal, total)

	view.Reveal = reveal
	view.Total = total
	view.CanLoadMore = reveal < total
	view.Unresolved = ranking.Unresolved
	view.UnknownTags = ranking.UnknownTags

	if reveal == 0 {
		return view, nil
	}
	items, err := c.fill(ctx, s, fp, ranking.Items[:reveal], knownTags(sel.Tags, ranking.UnknownTags))
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

// fill attaches explanations and posters. Cached explanations are reused;
// misses and posters are fetched concurrently and the cache is updated
// afterwards in rank order.
func (c *Controller) fill(ctx context.Context, s *Session, fp string, prefix []recommend.ScoredMovie, tags []string) ([]Item, error) {
	items := make([]Item, len(prefix))
	missing := make([]bool, len(prefix))
	for i := range prefix {
		items[i].ScoredMovie = prefix[i]
		text, ok := s.Explanations.Get(fp, prefix[i].ID)
		items[i].Explanation = text
		missing[i] = !ok
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i := range items {
		if missing[i] {
			g.Go(func() error {
				items[i].Explanation = c.explainer.Explain(gctx, explain.Candidate{
					ScoredMovie: items[i].ScoredMovie,
					Tags:        tags,
				})
				return nil
			})
		}
		g.Go(func() error {
			items[i].PosterURL = c.poster(gctx, items[i].Title)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		if missing[i] {
			s.Explanations.Put(fp, items[i].ID, items[i].Explanation)
		}
	}
	return items, nil
}

func (c *Controller) poster(ctx context.Context, title string) string {
	if c.posters != nil {
		if url := c.posters.PosterURL(ctx, catalog.CleanTitle(title)); url != "" {
			return url
		}
	}
	return tmdb.RecommendationPlaceholder
}

func truncate(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// knownTags drops the tags the catalog did not recognize.
func knownTags(tags, unknown []string) []string {
	if len(unknown) == 0 {
		return tags
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.ContainsFunc(unknown, func(u string) bool { return strings.EqualFold(u, t) }) {
			out = append(out, t)
		}
	}
	return out
}
