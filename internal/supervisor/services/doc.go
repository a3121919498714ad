// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package services adapts MovieMate's long-running components to suture.Service.

  - HTTPServerService runs an *http.Server and drains it on shutdown.
  - SessionMaintenanceService runs a robfig/cron schedule that prunes
    sessions idle longer than the session TTL and, for Badger-backed
    stores, reclaims value-log space.

Both implement fmt.Stringer so supervisor events name them.
*/
package services
