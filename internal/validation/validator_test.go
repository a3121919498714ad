// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package validation

import (
	"strings"
	"testing"
)

type selectionInput struct {
	Titles    []string `json:"titles" validate:"max=5,dive,notblank"`
	Tags      []string `json:"tags" validate:"max=5,dive,notblank"`
	YearFloor int      `json:"year_floor" validate:"yearfloor"`
}

type surveyInput struct {
	Satisfaction int    `json:"satisfaction" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"max=10"`
	Strategy     string `json:"strategy" validate:"omitempty,oneof=template generative"`
	Internal     string `json:"-" validate:"omitempty,notblank"`
	NoTag        string `validate:"required"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()
	v1, v2 := GetValidator(), GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input any
	}{
		{"empty selection", &selectionInput{}},
		{"full selection", &selectionInput{
			Titles:    []string{"A", "B", "C", "D", "E"},
			Tags:      []string{"heist"},
			YearFloor: 1999,
		}},
		{"year bounds", &selectionInput{YearFloor: MaxYear}},
		{"survey", &surveyInput{Satisfaction: 5, Strategy: "template", NoTag: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() error = %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     any
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "too many titles",
			input:     &selectionInput{Titles: []string{"A", "B", "C", "D", "E", "F"}},
			wantField: "titles",
			wantTag:   "max",
			wantMsg:   "titles must be at most 5 items",
		},
		{
			name:      "blank title",
			input:     &selectionInput{Titles: []string{"A", "  "}},
			wantField: "titles[1]",
			wantTag:   "notblank",
			wantMsg:   "titles[1] must not be blank",
		},
		{
			name:      "year floor too low",
			input:     &selectionInput{YearFloor: 1200},
			wantField: "year_floor",
			wantTag:   "yearfloor",
		},
		{
			name:      "satisfaction out of range",
			input:     &surveyInput{Satisfaction: 9, NoTag: "x"},
			wantField: "satisfaction",
			wantTag:   "max",
			wantMsg:   "satisfaction must be at most 5",
		},
		{
			name:      "comment too long",
			input:     &surveyInput{Satisfaction: 3, Comment: strings.Repeat("x", 11), NoTag: "x"},
			wantField: "comment",
			wantTag:   "max",
			wantMsg:   "comment must be at most 10 characters",
		},
		{
			name:      "unknown strategy",
			input:     &surveyInput{Satisfaction: 3, Strategy: "magic", NoTag: "x"},
			wantField: "strategy",
			wantTag:   "oneof",
			wantMsg:   "strategy must be one of: template generative",
		},
		{
			name:      "field without json tag",
			input:     &surveyInput{Satisfaction: 3},
			wantField: "NoTag",
			wantTag:   "required",
			wantMsg:   "NoTag is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() error = nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&selectionInput{YearFloor: 5}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", single.Code)
	}
	if single.Details["field"] != "year_floor" {
		t.Errorf("Details = %v", single.Details)
	}

	multi := ValidateStruct(&surveyInput{Satisfaction: 0, Strategy: "x"}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]any)
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want three entries", multi.Details["fields"])
	}
	if strings.Count(multi.Message, ";") != 2 {
		t.Errorf("Message = %q, want three joined messages", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}
