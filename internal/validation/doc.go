// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

// Package validation wraps go-playground/validator v10 for API request
// structs.
//
// # Overview
//
// A single validator instance is created on first use with
// WithRequiredStructEnabled and two project rules:
//
//   - notblank: string is not empty after trimming whitespace
//   - yearfloor: integer is 0 (no floor) or a plausible release year
//
// Field names in errors come from the json tag, so clients see the same
// names they sent.
//
// # Usage
//
//	type SelectionRequest struct {
//	    Titles    []string `json:"titles" validate:"max=5,dive,notblank"`
//	    YearFloor *int     `json:"year_floor" validate:"omitempty,yearfloor"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Thread Safety
//
// The validator caches struct metadata and is safe for concurrent use.
package validation
