// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Phrases are the template pools. Fragments may use the placeholders
// {title}, {genres}, {tags}, {rating}, {count}, {year}, {decade}, {level}
// and {percent}.
type Phrases struct {
	Genre      []string `yaml:"genre"`
	Tag        []string `yaml:"tag"`
	Rating     []string `yaml:"rating"`
	Popularity []string `yaml:"popularity"`
	Era        []string `yaml:"era"`

	// Generic is used when no rule category applies.
	Generic []string `yaml:"generic"`

	// Connector joins fragments.
	Connector string `yaml:"connector"`

	// Trust pools keyed by level: very_high, high, medium, low.
	Trust map[string][]string `yaml:"trust"`
}

// DefaultPhrases returns the built-in English pools.
func DefaultPhrases() Phrases {
	return Phrases{
		Genre: []string{
			"it shares the {genres} you keep coming back to",
			"its {genres} mix lines up with your picks",
			"it sits squarely in your {genres} taste",
		},
		Tag: []string{
			"it leans into the {tags} you asked for",
			"it scores well on {tags}",
		},
		Rating: []string{
			"viewers rate it {rating} out of 5",
			"it holds a strong {rating} average rating",
		},
		Popularity: []string{
			"{count} people have rated it",
			"it is a crowd favorite with {count} ratings",
		},
		Era: []string{
			"it is a {decade} release",
			"it comes from the {decade}",
		},
		Generic: []string{
			"it is similar to your picks but brings something different",
			"it overlaps with what you chose while adding a new angle",
		},
		Connector: ", and ",
		Trust: map[string][]string{
			"very_high": {"Match confidence: {level} ({percent})."},
			"high":      {"Match confidence: {level} ({percent})."},
			"medium":    {"Match confidence: {level} ({percent})."},
			"low":       {"Match confidence: {level} ({percent}), worth a try."},
		},
	}
}

// LoadPhrases reads a YAML file and overlays it on DefaultPhrases. Pools
// absent from the file keep their defaults.
func LoadPhrases(path string) (Phrases, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return Phrases{}, fmt.Errorf("read phrases: %w", err)
	}
	var override Phrases
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Phrases{}, fmt.Errorf("parse phrases %s: %w", path, err)
	}
	return DefaultPhrases().merge(override), nil
}

//nolint:gocritic // hugeParam: value semantics keep the defaults untouched
func (p Phrases) merge(o Phrases) Phrases {
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	pick(&p.Genre, o.Genre)
	pick(&p.Tag, o.Tag)
	pick(&p.Rating, o.Rating)
	pick(&p.Popularity, o.Popularity)
	pick(&p.Era, o.Era)
	pick(&p.Generic, o.Generic)
	if o.Connector != "" {
		p.Connector = o.Connector
	}
	if len(o.Trust) > 0 {
		trust := make(map[string][]string, len(p.Trust))
		for k, v := range p.Trust {
			trust[k] = v
		}
		for k, v := range o.Trust {
			if len(v) > 0 {
				trust[k] = v
			}
		}
		p.Trust = trust
	}
	return p
}

// trustKey maps a trust level to its YAML key.
func trustKey(level string) string {
	switch level {
	case TrustVeryHigh:
		return "very_high"
	case TrustHigh:
		return "high"
	case TrustMedium:
		return "medium"
	default:
		return "low"
	}
}
