// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/moviemate/internal/api"
	"github.com/tomtom215/moviemate/internal/config"
	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
	"github.com/tomtom215/moviemate/internal/session"
	"github.com/tomtom215/moviemate/internal/supervisor"
	"github.com/tomtom215/moviemate/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("MovieMate stopped with error")
		stop()
		os.Exit(1) //nolint:gocritic // exitAfterDefer: stop already called
	}
	logging.Info().Msg("MovieMate stopped")
}

// run builds every component and serves until ctx is canceled.
//
//nolint:gocritic // hugeParam: config passed once at startup
func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Bool("production", cfg.IsProduction()).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting MovieMate")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	catalogSource, cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	engine, err := newEngine(cat, cfg)
	if err != nil {
		return err
	}

	posters := newTMDBClient(cfg)
	warmPosters(ctx, posters, cat, cfg.Ranking.DefaultYearFloor)
	explainer, err := newExplainer(cfg, posters)
	if err != nil {
		return err
	}

	store, err := session.OpenStore(ctx, session.StoreConfig{
		Backend:       cfg.Session.Store,
		Path:          cfg.Session.Path,
		RedisAddr:     cfg.Session.RedisAddr,
		RedisPassword: cfg.Session.RedisPassword,
		RedisDB:       cfg.Session.RedisDB,
		TTL:           cfg.Session.TTL,
	})
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()
	logging.Info().Str("backend", cfg.Session.Store).Dur("ttl", cfg.Session.TTL).Msg("Session store ready")

	sessOpts := session.DefaultOptions()
	sessOpts.Required = cfg.Ranking.MaxSelections
	sessOpts.DefaultYearFloor = cfg.Ranking.DefaultYearFloor
	sessOpts.Pager = session.Pager{Initial: cfg.Pagination.Initial, Step: cfg.Pagination.Step}
	controller, err := session.NewController(engine, explainer, posterSource(posters), store, sessOpts)
	if err != nil {
		return fmt.Errorf("create session controller: %w", err)
	}

	deps := api.Deps{
		Catalog:          cat,
		CatalogSource:    catalogSource,
		Sessions:         controller,
		Posters:          posterSource(posters),
		DefaultYearFloor: cfg.Ranking.DefaultYearFloor,
		Version:          version,
	}
	if cfg.Feedback.Enabled {
		fb, err := openFeedback(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := fb.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing feedback store")
			}
		}()
		deps.Feedback = fb
	}

	handler, err := api.NewHandler(deps)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)), cfg.Server.HandlerTimeout)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	maintenance, err := services.NewSessionMaintenanceService(store, cfg.Session.TTL, cfg.Session.PruneSchedule)
	if err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddDataService(maintenance)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("HTTP server starting")
	err = tree.Serve(ctx)

	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}
	return err
}
