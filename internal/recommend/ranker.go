// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"context"
	"sort"

	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/features"
)

// ctxCheckEvery bounds how many candidates are scored between cancellation checks.
const ctxCheckEvery = 1024

// Ranker scores candidates against a profile.
type Ranker struct {
	cat      *catalog.Catalog
	enc      *features.Encoder
	withTags Weights
}

// NewRanker creates a Ranker using withTags whenever the profile has tags.
func NewRanker(cat *catalog.Catalog, enc *features.Encoder, withTags Weights) *Ranker {
	return &Ranker{cat: cat, enc: enc, withTags: withTags}
}

// WeightsFor returns the weighting that applies to p.
func (r *Ranker) WeightsFor(p *Profile) Weights {
	if p.HasTags {
		return r.withTags
	}
	return WithoutTags
}

// Align reindexes the profile vectors onto the ranker's encoder. A non-nil
// result lists the mismatches that were repaired.
func (r *Ranker) Align(p *Profile) []error {
	var errs []error
	genre, err := features.Align(features.SpaceGenre, p.Genre, p.GenreColumns, r.enc.Genres.Space().Columns())
	if err != nil {
		errs = append(errs, err)
		p.Genre, p.GenreColumns = genre, r.enc.Genres.Space().Columns()
	}
	tag, err := features.Align(features.SpaceTag, p.Tag, p.TagColumns, r.enc.Tags.Columns())
	if err != nil {
		errs = append(errs, err)
		p.Tag, p.TagColumns = tag, r.enc.Tags.Columns()
	}
	return errs
}

// Rank scores every movie with Year >= yearFloor that is not selected and
// returns them sorted by combined similarity, descending. Ties keep catalog
// order. The profile must already be aligned.
func (r *Ranker) Rank(ctx context.Context, p *Profile, yearFloor int) ([]ScoredMovie, error) {
	w := r.WeightsFor(p)
	genreNorm := norm(p.Genre)
	tagNorm := 0.0
	if p.HasTags {
		tagNorm = norm(p.Tag)
	}

	movies := r.cat.Movies()
	out := make([]ScoredMovie, 0, len(movies))
	for i := range movies {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m := &movies[i]
		if m.Year < yearFloor || p.IsSelected(m.ID) {
			continue
		}

		s := ScoredMovie{Movie: *m}
		s.GenreSimilarity = cosineWithNorm(p.Genre, genreNorm, r.enc.Genres.Row(m.ID))
		if p.HasTags {
			s.TagSimilarity = cosineWithNorm(p.Tag, tagNorm, r.enc.Tags.Row(m.ID))
			s.Similarity = w.Genre*s.GenreSimilarity + w.Tag*s.TagSimilarity
		} else {
			s.Similarity = s.GenreSimilarity
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Similarity > out[b].Similarity
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
