// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moviemate/internal/middleware"
)

// DefaultHandlerTimeout bounds each API request.
const DefaultHandlerTimeout = 10 * time.Second

// Router assembles handlers and middleware.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	handlerTimeout time.Duration
}

// NewRouter creates a router. A non-positive timeout uses
// DefaultHandlerTimeout.
func NewRouter(handler *Handler, mw *ChiMiddleware, handlerTimeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	if handlerTimeout <= 0 {
		handlerTimeout = DefaultHandlerTimeout
	}
	return &Router{handler: handler, chiMiddleware: mw, handlerTimeout: handlerTimeout}
}

// SetupChi builds the route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		// Health checks bypass rate limiting and the request deadline.
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(middleware.Timeout(router.handlerTimeout))

			r.Get("/movies", h.Movies)
			r.Get("/tags", h.Tags)

			r.Post("/sessions", h.CreateSession)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Delete("/", h.DeleteSession)
				r.Put("/selection", h.UpdateSelection)
				r.Post("/more", h.LoadMore)
				r.Post("/feedback", h.SubmitFeedback)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
