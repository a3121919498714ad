// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 64 << 10

// BrowseRequest holds the /movies query parameters.
type BrowseRequest struct {
	Query     string `json:"q" validate:"max=200"`
	YearFrom  int    `json:"year_from" validate:"yearfloor"`
	Offset    int    `json:"offset" validate:"min=0,max=1000000"`
	Limit     int    `json:"limit" validate:"min=1,max=200"`
	Posters   bool   `json:"posters"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

// SelectionRequest is the PUT /sessions/{id}/selection body. Lists longer
// than five are accepted and truncated by the session controller; the
// limits here only bound request size.
type SelectionRequest struct {
	Titles    []string `json:"titles" validate:"max=50,dive,notblank,max=300"`
	Tags      []string `json:"tags" validate:"max=50,dive,notblank,max=100"`
	YearFloor *int     `json:"year_floor" validate:"omitempty,yearfloor"`
}

// FeedbackRequest is the POST /sessions/{id}/feedback body.
type FeedbackRequest struct {
	Satisfaction int               `json:"satisfaction" validate:"min=1,max=5"`
	Comment      string            `json:"comment" validate:"max=2000"`
	Answers      map[string]string `json:"answers" validate:"max=20,dive,keys,max=64,endkeys,max=1000"`
}

// errBadParam marks malformed query parameters.
var errBadParam = errors.New("invalid query parameter")

// getIntParam returns the integer value of key, def when absent.
func getIntParam(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadParam, key)
	}
	return v, nil
}

// getBoolParam accepts 1/0, true/false, yes/no.
func getBoolParam(r *http.Request, key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key))) {
	case "", "0", "false", "no":
		return false, nil
	case "1", "true", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s must be a boolean", errBadParam, key)
	}
}

// decodeJSON reads a size-limited JSON body into dst, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", errBadParam)
		}
		return fmt.Errorf("%w: %v", errBadParam, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON body", errBadParam)
	}
	return nil
}
