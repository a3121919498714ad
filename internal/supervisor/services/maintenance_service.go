// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"
)

// Maintenance job names as recorded in metrics.
const (
	JobSessionPrune = "session_prune"
	JobValueLogGC   = "value_log_gc"
)

// ErrInvalidSchedule wraps a cron spec that does not parse.
var ErrInvalidSchedule = errors.New("invalid maintenance schedule")

// SessionPruner removes sessions last updated before cutoff.
// Satisfied by every session.Store.
type SessionPruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

// garbageCollector is implemented by stores with reclaimable space
// (session.BadgerStore).
type garbageCollector interface {
	RunGC() error
}

// SessionMaintenanceService prunes idle sessions on a cron schedule and,
// for stores that support it, reclaims value-log space afterwards.
type SessionMaintenanceService struct {
	store    SessionPruner
	ttl      time.Duration
	schedule cron.Schedule
	spec     string
	now      func() time.Time
	logger   zerolog.Logger
	name     string
}

// NewSessionMaintenanceService validates spec (standard five-field cron or
// a descriptor such as "@every 10m"). A non-positive ttl disables pruning;
// GC still runs.
func NewSessionMaintenanceService(store SessionPruner, ttl time.Duration, spec string) (*SessionMaintenanceService, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}
	return &SessionMaintenanceService{
		store:    store,
		ttl:      ttl,
		schedule: sched,
		spec:     spec,
		now:      time.Now,
		logger:   logging.WithComponent("maintenance"),
		name:     "session-maintenance",
	}, nil
}

// Serve runs the schedule until ctx is canceled. A job in flight is
// allowed to finish before Serve returns.
func (s *SessionMaintenanceService) Serve(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		_, _ = s.RunOnce(ctx)
	}))
	c.Start()
	s.logger.Info().Str("schedule", s.spec).Dur("ttl", s.ttl).Msg("session maintenance started")

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

// RunOnce performs one maintenance pass and returns the number of sessions
// pruned. A prune failure skips GC.
func (s *SessionMaintenanceService) RunOnce(ctx context.Context) (int, error) {
	pruned := 0
	if s.ttl > 0 {
		var err error
		cutoff := s.now().Add(-s.ttl)
		pruned, err = s.store.Prune(ctx, cutoff)
		metrics.RecordMaintenance(JobSessionPrune, pruned, err)
		if err != nil {
			s.logger.Warn().Err(err).Msg("session prune failed")
			return pruned, err
		}
		if pruned > 0 {
			s.logger.Info().Int("pruned", pruned).Time("cutoff", cutoff).Msg("idle sessions pruned")
		}
	}

	if gc, ok := s.store.(garbageCollector); ok {
		err := gc.RunGC()
		metrics.RecordMaintenance(JobValueLogGC, 0, err)
		if err != nil {
			s.logger.Warn().Err(err).Msg("value log GC failed")
			return pruned, err
		}
	}
	return pruned, nil
}

// String names the service in supervisor events.
func (s *SessionMaintenanceService) String() string {
	return s.name
}
