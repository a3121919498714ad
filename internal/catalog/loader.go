// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
)

// Config tells the Loader where the datasets are and how to filter them.
type Config struct {
	MoviesPath    string
	RatingsPath   string // optional
	TagsPath      string // optional
	TagScoresPath string // optional, requires TagsPath

	// Delimiter forces a separator; 0 sniffs it per file.
	Delimiter rune

	QualityGate    bool
	MinAvgRating   float64
	MinRatingCount int

	FilterExpr string
}

// DefaultConfig returns the quality gate defaults for the given movie file.
func DefaultConfig(moviesPath string) Config {
	return Config{
		MoviesPath:     moviesPath,
		QualityGate:    true,
		MinAvgRating:   3.0,
		MinRatingCount: 50,
	}
}

// Loader reads the datasets from disk.
type Loader struct {
	cfg    Config
	logger zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(cfg Config) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logging.WithComponent("catalog"),
	}
}

// Load reads all configured datasets concurrently and builds the working
// catalog. Any failure returns a *LoadError and a nil catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	cat, loaded, err := l.load(ctx)
	if err != nil {
		dataset := DatasetMovies
		var le *LoadError
		if errors.As(err, &le) {
			dataset = le.Dataset
		}
		metrics.RecordCatalogLoad(time.Since(start), 0, 0, 0, dataset, err)
		l.logger.Error().Err(err).Str("dataset", dataset).Msg("Catalog load failed")
		return nil, err
	}

	cat.stats.MoviesLoaded = loaded
	cat.stats.Filtered = loaded != cat.Len()
	cat.stats.LoadedAt = time.Now()
	cat.stats.Duration = time.Since(start)

	metrics.RecordCatalogLoad(cat.stats.Duration, loaded, cat.Len(), len(cat.tags), "", nil)
	l.logger.Info().
		Int("movies_loaded", loaded).
		Int("movies_working", cat.Len()).
		Int("ratings", len(cat.ratings)).
		Int("tags", len(cat.tags)).
		Int("tag_scores", len(cat.tagScores)).
		Bool("filtered", cat.stats.Filtered).
		Dur("duration", cat.stats.Duration).
		Msg("Catalog loaded")

	return cat, nil
}

func (l *Loader) load(ctx context.Context) (*Catalog, int, error) {
	var filter *Filter
	if expr := strings.TrimSpace(l.cfg.FilterExpr); expr != "" {
		f, err := CompileFilter(expr)
		if err != nil {
			return nil, 0, &LoadError{Dataset: DatasetFilter, Err: err}
		}
		filter = f
	}

	var (
		movies  []Movie
		ratings []Rating
		tags    []Tag
		scores  []TagScore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movies, err = readMovies(gctx, l.cfg.MoviesPath, l.cfg.Delimiter)
		return wrapLoad(DatasetMovies, l.cfg.MoviesPath, err)
	})
	if l.cfg.RatingsPath != "" {
		g.Go(func() (err error) {
			ratings, err = readRatings(gctx, l.cfg.RatingsPath, l.cfg.Delimiter)
			return wrapLoad(DatasetRatings, l.cfg.RatingsPath, err)
		})
	}
	if l.cfg.TagsPath != "" {
		g.Go(func() (err error) {
			tags, err = readTags(gctx, l.cfg.TagsPath, l.cfg.Delimiter)
			return wrapLoad(DatasetTags, l.cfg.TagsPath, err)
		})
	}
	if l.cfg.TagScoresPath != "" {
		g.Go(func() (err error) {
			scores, err = readTagScores(gctx, l.cfg.TagScoresPath, l.cfg.Delimiter)
			return wrapLoad(DatasetTagScores, l.cfg.TagScoresPath, err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if len(movies) == 0 {
		return nil, 0, &LoadError{Dataset: DatasetMovies, Path: l.cfg.MoviesPath, Err: ErrEmptyCatalog}
	}
	loaded := len(movies)

	applyRatings(movies, ratings)

	working := movies[:0:0]
	gate := l.cfg.QualityGate && l.cfg.RatingsPath != ""
	for i := range movies {
		m := &movies[i]
		if gate && (m.AvgRating < l.cfg.MinAvgRating || m.RatingCount < l.cfg.MinRatingCount) {
			continue
		}
		if filter != nil {
			keep, err := filter.Match(m)
			if err != nil {
				return nil, 0, &LoadError{Dataset: DatasetFilter, Err: err}
			}
			if !keep {
				continue
			}
		}
		working = append(working, *m)
	}
	if len(working) == 0 {
		return nil, 0, &LoadError{
			Dataset: DatasetMovies,
			Path:    l.cfg.MoviesPath,
			Err:     fmt.Errorf("%w after quality gate and filter (%d loaded)", ErrEmptyCatalog, loaded),
		}
	}

	return New(working, tags, scores, ratings), loaded, nil
}

func wrapLoad(dataset, path string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Dataset: dataset, Path: path, Err: err}
}

// applyRatings derives AvgRating and RatingCount. Movies without ratings get
// zero for both.
func applyRatings(movies []Movie, ratings []Rating) {
	if len(ratings) == 0 {
		return
	}
	type agg struct {
		sum float64
		n   int
	}
	byMovie := make(map[int]*agg, len(movies))
	for _, r := range ratings {
		a := byMovie[r.MovieID]
		if a == nil {
			a = &agg{}
			byMovie[r.MovieID] = a
		}
		a.sum += r.Value
		a.n++
	}
	for i := range movies {
		if a, ok := byMovie[movies[i].ID]; ok {
			movies[i].AvgRating = a.sum / float64(a.n)
			movies[i].RatingCount = a.n
		}
	}
}

func readMovies(ctx context.Context, path string, delim rune) ([]Movie, error) {
	t, closer, err := openTable(path, delim)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	idCol, err := t.require("movieId", "movie_id", "id")
	if err != nil {
		return nil, err
	}
	titleCol, err := t.require("title")
	if err != nil {
		return nil, err
	}
	genresCol := t.column("genres", "genre")
	yearCol := t.column("year")

	var movies []Movie
	err = t.each(ctx, func(rec []string) error {
		id, err := parseInt(rec, idCol, "movie id")
		if err != nil {
			return err
		}
		title := field(rec, titleCol)

		year := 0
		if yearCol >= 0 {
			// Non-numeric or blank years fall back to the title, like a
			// coerced NaN would.
			if y, err := parseInt(rec, yearCol, "year"); err == nil {
				year = y
			}
		}
		if year == 0 {
			year = YearFromTitle(title)
		}

		movies = append(movies, Movie{
			ID:     id,
			Title:  title,
			Year:   year,
			Genres: ParseGenres(field(rec, genresCol)),
		})
		return nil
	})
	return movies, err
}

func readRatings(ctx context.Context, path string, delim rune) ([]Rating, error) {
	t, closer, err := openTable(path, delim)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	idCol, err := t.require("movieId", "movie_id")
	if err != nil {
		return nil, err
	}
	ratingCol, err := t.require("rating", "score")
	if err != nil {
		return nil, err
	}

	var ratings []Rating
	err = t.each(ctx, func(rec []string) error {
		id, err := parseInt(rec, idCol, "movie id")
		if err != nil {
			return err
		}
		v, err := parseFloat(rec, ratingCol, "rating")
		if err != nil {
			return err
		}
		ratings = append(ratings, Rating{MovieID: id, Value: v})
		return nil
	})
	return ratings, err
}

func readTags(ctx context.Context, path string, delim rune) ([]Tag, error) {
	t, closer, err := openTable(path, delim)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	idCol, err := t.require("tagId", "tag_id", "id")
	if err != nil {
		return nil, err
	}
	nameCol, err := t.require("tag", "name")
	if err != nil {
		return nil, err
	}

	var tags []Tag
	err = t.each(ctx, func(rec []string) error {
		id, err := parseInt(rec, idCol, "tag id")
		if err != nil {
			return err
		}
		tags = append(tags, Tag{ID: id, Name: field(rec, nameCol)})
		return nil
	})
	return tags, err
}

func readTagScores(ctx context.Context, path string, delim rune) ([]TagScore, error) {
	t, closer, err := openTable(path, delim)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	movieCol, err := t.require("movieId", "movie_id")
	if err != nil {
		return nil, err
	}
	tagCol, err := t.require("tagId", "tag_id")
	if err != nil {
		return nil, err
	}
	relCol, err := t.require("relevance", "score")
	if err != nil {
		return nil, err
	}

	var scores []TagScore
	err = t.each(ctx, func(rec []string) error {
		movieID, err := parseInt(rec, movieCol, "movie id")
		if err != nil {
			return err
		}
		tagID, err := parseInt(rec, tagCol, "tag id")
		if err != nil {
			return err
		}
		rel, err := parseFloat(rec, relCol, "relevance")
		if err != nil {
			return err
		}
		scores = append(scores, TagScore{MovieID: movieID, TagID: tagID, Relevance: clamp01(rel)})
		return nil
	})
	return scores, err
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
