// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Filter is a compiled CEL predicate over a movie. Programs are immutable and
// safe for concurrent evaluation.
//
// Variables: title (string), year (int), genres (list of string),
// avg_rating (double), n_ratings (int).
type Filter struct {
	expr string
	prg  cel.Program
}

// CompileFilter type-checks expr. It must evaluate to a bool.
func CompileFilter(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("title", cel.StringType),
		cel.Variable("year", cel.IntType),
		cel.Variable("genres", cel.ListType(cel.StringType)),
		cel.Variable("avg_rating", cel.DoubleType),
		cel.Variable("n_ratings", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("cel environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q must return bool, got %s", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the filter against m.
func (f *Filter) Match(m *Movie) (bool, error) {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	out, _, err := f.prg.Eval(map[string]any{
		"title":      m.Title,
		"year":       int64(m.Year),
		"genres":     genres,
		"avg_rating": m.AvgRating,
		"n_ratings":  int64(m.RatingCount),
	})
	if err != nil {
		return false, fmt.Errorf("eval %q for movie %d: %w", f.expr, m.ID, err)
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.expr, out.Value())
	}
	return keep, nil
}
