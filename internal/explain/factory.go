// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"fmt"
	"math/rand"
	"time"
)

// Config selects and configures the explanation strategy.
type Config struct {
	Strategy    string
	PhrasesPath string
	Seed        int64 // 0 seeds from the clock
	Timeout     time.Duration
}

// New builds the configured Explainer. completer is required for the
// generative strategy; overviews may be nil.
func New(cfg Config, completer Completer, overviews OverviewSource) (Explainer, error) {
	switch cfg.Strategy {
	case "", StrategyTemplate:
		phrases := DefaultPhrases()
		if cfg.PhrasesPath != "" {
			p, err := LoadPhrases(cfg.PhrasesPath)
			if err != nil {
				return nil, err
			}
			phrases = p
		}
		var src rand.Source
		if cfg.Seed != 0 {
			src = rand.NewSource(cfg.Seed)
		}
		return NewTemplateExplainer(phrases, DefaultRules(), src), nil
	case StrategyGenerative:
		if completer == nil {
			return nil, fmt.Errorf("strategy %q requires a completer", cfg.Strategy)
		}
		return NewGenerativeExplainer(completer, overviews, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown explanation strategy %q", cfg.Strategy)
	}
}
