// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package recommend

import (
	"github.com/tomtom215/moviemate/internal/catalog"
	"github.com/tomtom215/moviemate/internal/features"
)

// Profile is the user's taste in both feature spaces. It is built per
// request and never shared.
type Profile struct {
	Genre        []float64
	GenreColumns []string
	Tag          []float64
	TagColumns   []int

	// HasTags is true when at least one chosen tag resolved.
	HasTags bool

	Selected    []catalog.Movie
	Unresolved  []string
	TagIDs      []int
	UnknownTags []string

	selected map[int]struct{}
}

// IsSelected reports whether movieID is part of the selection.
func (p *Profile) IsSelected(movieID int) bool {
	_, ok := p.selected[movieID]
	return ok
}

// SelectedIDs returns the resolved movie ids in selection order.
func (p *Profile) SelectedIDs() []int {
	ids := make([]int, len(p.Selected))
	for i := range p.Selected {
		ids[i] = p.Selected[i].ID
	}
	return ids
}

// BuildProfile resolves titles and tags against the full working catalog.
// It returns ErrNoProfile when no title resolves. Unknown tags are recorded
// and otherwise ignored.
func BuildProfile(cat *catalog.Catalog, enc *features.Encoder, titles, tags []string) (*Profile, error) {
	selected, unresolved := cat.ResolveTitles(titles)
	if len(selected) == 0 {
		return nil, ErrNoProfile
	}

	p := &Profile{
		GenreColumns: enc.Genres.Space().Columns(),
		TagColumns:   enc.Tags.Columns(),
		Selected:     selected,
		Unresolved:   unresolved,
		selected:     make(map[int]struct{}, len(selected)),
	}

	p.Genre = make([]float64, enc.Genres.Space().Len())
	for i := range selected {
		p.selected[selected[i].ID] = struct{}{}
		for c, v := range enc.Genres.Row(selected[i].ID) {
			p.Genre[c] += v
		}
	}
	n := float64(len(selected))
	for c := range p.Genre {
		p.Genre[c] /= n
	}

	seenTag := make(map[int]struct{}, len(tags))
	for _, name := range tags {
		tag, ok := cat.TagByName(name)
		if !ok {
			p.UnknownTags = append(p.UnknownTags, name)
			continue
		}
		if _, dup := seenTag[tag.ID]; dup {
			continue
		}
		seenTag[tag.ID] = struct{}{}
		p.TagIDs = append(p.TagIDs, tag.ID)
	}
	p.Tag = enc.Tags.Indicator(p.TagIDs)
	p.HasTags = len(p.TagIDs) > 0

	return p, nil
}
