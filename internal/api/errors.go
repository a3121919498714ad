// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/moviemate/internal/recommend"
	"github.com/tomtom215/moviemate/internal/session"
	"github.com/tomtom215/moviemate/internal/validation"
)

// errFeedbackDisabled is returned when no feedback store is configured.
var errFeedbackDisabled = errors.New("feedback collection is disabled")

const noProfileMessage = "None of the selected movies could be found in the catalog. Please choose different movies."

// respondErr maps domain errors to status codes. data, when non-nil, is
// attached to NO_PROFILE responses.
func respondErr(rw *ResponseWriter, err error, data any) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	case errors.Is(err, errBadParam):
		rw.BadRequest(err.Error())
	case errors.Is(err, session.ErrNotFound):
		rw.NotFound("Session not found or expired")
	case errors.Is(err, recommend.ErrNoProfile):
		rw.ErrorWithData(http.StatusUnprocessableEntity, ErrCodeNoProfile, noProfileMessage, data)
	case errors.Is(err, errFeedbackDisabled):
		rw.ServiceUnavailable("Feedback collection is disabled")
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "The request took too long")
	case errors.Is(err, context.Canceled):
		// Client went away; the status is never seen.
		rw.Error(499, ErrCodeTimeout, "Request canceled")
	default:
		rw.InternalError(err)
	}
}
