// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"sort"
	"strings"
)

// Catalog is the immutable working catalog. Accessors return shared slices;
// callers must not modify them.
type Catalog struct {
	movies []Movie
	byID   map[int]int

	// exact and case-folded title lookups
	byTitle     map[string]int
	byTitleFold map[string]int
	titleOrder  []int // indexes into movies sorted by title

	tags      []Tag // ascending id
	tagByName map[string]int
	tagScores []TagScore
	ratings   []Rating
	stats     Stats
}

// New indexes an already-derived set of movies. Movies keep their given
// order, which is the stable tie-break order for ranking. Duplicate ids keep
// the first occurrence.
func New(movies []Movie, tags []Tag, scores []TagScore, ratings []Rating) *Catalog {
	c := &Catalog{
		movies:      make([]Movie, 0, len(movies)),
		byID:        make(map[int]int, len(movies)),
		byTitle:     make(map[string]int, len(movies)),
		byTitleFold: make(map[string]int, len(movies)),
		tagByName:   make(map[string]int, len(tags)),
		ratings:     ratings,
	}

	for _, m := range movies {
		if _, dup := c.byID[m.ID]; dup {
			continue
		}
		idx := len(c.movies)
		c.movies = append(c.movies, m)
		c.byID[m.ID] = idx
		if _, ok := c.byTitle[m.Title]; !ok {
			c.byTitle[m.Title] = idx
		}
		fold := foldTitle(m.Title)
		if _, ok := c.byTitleFold[fold]; !ok {
			c.byTitleFold[fold] = idx
		}
	}

	c.titleOrder = make([]int, len(c.movies))
	for i := range c.titleOrder {
		c.titleOrder[i] = i
	}
	sort.SliceStable(c.titleOrder, func(a, b int) bool {
		return c.movies[c.titleOrder[a]].Title < c.movies[c.titleOrder[b]].Title
	})

	seenTag := make(map[int]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seenTag[t.ID]; dup {
			continue
		}
		seenTag[t.ID] = struct{}{}
		c.tags = append(c.tags, t)
	}
	sort.Slice(c.tags, func(a, b int) bool { return c.tags[a].ID < c.tags[b].ID })
	for i, t := range c.tags {
		key := strings.ToLower(strings.TrimSpace(t.Name))
		if _, ok := c.tagByName[key]; !ok {
			c.tagByName[key] = i
		}
	}

	// Scores only matter for movies and tags we know about.
	c.tagScores = make([]TagScore, 0, len(scores))
	for _, s := range scores {
		if _, ok := c.byID[s.MovieID]; !ok {
			continue
		}
		if _, ok := seenTag[s.TagID]; !ok {
			continue
		}
		c.tagScores = append(c.tagScores, s)
	}

	c.stats = Stats{
		MoviesLoaded:  len(c.movies),
		MoviesWorking: len(c.movies),
		Ratings:       len(ratings),
		Tags:          len(c.tags),
		TagScores:     len(c.tagScores),
	}
	return c
}

func foldTitle(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// Movies returns the working catalog in load order.
func (c *Catalog) Movies() []Movie { return c.movies }

// Len returns the number of movies.
func (c *Catalog) Len() int { return len(c.movies) }

// MovieByID looks a movie up by identifier.
func (c *Catalog) MovieByID(id int) (Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// IndexOf returns the load-order index of a movie id.
func (c *Catalog) IndexOf(id int) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// MovieByTitle resolves an exact title first, then a case-insensitive,
// whitespace-trimmed match.
func (c *Catalog) MovieByTitle(title string) (Movie, bool) {
	if i, ok := c.byTitle[title]; ok {
		return c.movies[i], true
	}
	if i, ok := c.byTitleFold[foldTitle(title)]; ok {
		return c.movies[i], true
	}
	return Movie{}, false
}

// ResolveTitles maps titles to movies against the full working catalog.
// Each movie is returned once, in selection order; titles that match nothing
// are returned separately.
func (c *Catalog) ResolveTitles(titles []string) (resolved []Movie, unresolved []string) {
	seen := make(map[int]struct{}, len(titles))
	for _, t := range titles {
		m, ok := c.MovieByTitle(t)
		if !ok {
			unresolved = append(unresolved, t)
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		resolved = append(resolved, m)
	}
	return resolved, unresolved
}

// Tags returns the tag vocabulary in ascending id order.
func (c *Catalog) Tags() []Tag { return c.tags }

// TagByName resolves a tag name case-insensitively.
func (c *Catalog) TagByName(name string) (Tag, bool) {
	i, ok := c.tagByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Tag{}, false
	}
	return c.tags[i], true
}

// TagScores returns the relevance tuples restricted to known movies and tags.
func (c *Catalog) TagScores() []TagScore { return c.tagScores }

// Ratings returns the raw ratings table (empty when no ratings were configured).
func (c *Catalog) Ratings() []Rating { return c.ratings }

// Stats returns load statistics.
func (c *Catalog) Stats() Stats { return c.stats }

// BrowseQuery filters the catalog for the selection screen.
type BrowseQuery struct {
	Query    string // case-insensitive literal substring of the title
	YearFrom int
	Offset   int
	Limit    int // <= 0 means all
}

// BrowseResult is one page of browse results.
type BrowseResult struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
}

// Browse lists movies released in or after YearFrom whose title contains
// Query, ordered by title.
func (c *Catalog) Browse(q BrowseQuery) BrowseResult {
	needle := strings.ToLower(q.Query)
	matched := make([]int, 0, 64)
	for _, i := range c.titleOrder {
		m := &c.movies[i]
		if m.Year < q.YearFrom {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		matched = append(matched, i)
	}

	res := BrowseResult{Total: len(matched)}
	start := q.Offset
	if start < 0 {
		start = 0
	}
	if start >= len(matched) {
		res.Movies = []Movie{}
		return res
	}
	end := len(matched)
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}
	res.Movies = make([]Movie, 0, end-start)
	for _, i := range matched[start:end] {
		res.Movies = append(res.Movies, c.movies[i])
	}
	return res
}
