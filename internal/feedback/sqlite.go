// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemate/internal/logging"
	"github.com/tomtom215/moviemate/internal/metrics"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS moviemate_feedback (
	id           TEXT PRIMARY KEY,
	session_id   TEXT NOT NULL,
	created_at   DATETIME NOT NULL,
	titles       TEXT NOT NULL DEFAULT '[]',
	tags         TEXT NOT NULL DEFAULT '[]',
	year_floor   INTEGER NOT NULL DEFAULT 0,
	fingerprint  TEXT NOT NULL DEFAULT '',
	revealed     INTEGER NOT NULL DEFAULT 0,
	satisfaction INTEGER NOT NULL,
	comment      TEXT NOT NULL DEFAULT '',
	answers      TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_moviemate_feedback_created_at ON moviemate_feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_moviemate_feedback_session ON moviemate_feedback(session_id);
`

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	now    func() time.Time
	logger zerolog.Logger
}

// OpenSQLite opens (or creates) the database at path and applies the
// schema. The parent directory is created when missing.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create feedback directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open feedback database: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close() //nolint:errcheck // pragma error is the one reported
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close() //nolint:errcheck // schema error is the one reported
		return nil, fmt.Errorf("init feedback schema: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now, logger: logging.WithComponent("feedback")}, nil
}

// Append stores r, filling ID and CreatedAt when unset.
func (s *SQLiteStore) Append(ctx context.Context, r *Record) (err error) {
	defer func() { metrics.RecordFeedback(err) }()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}

	titles, err := marshalList(r.Titles)
	if err != nil {
		return err
	}
	tags, err := marshalList(r.Tags)
	if err != nil {
		return err
	}
	answers := []byte("{}")
	if len(r.Answers) > 0 {
		if answers, err = json.Marshal(r.Answers); err != nil {
			return fmt.Errorf("marshal answers: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
	INSERT INTO moviemate_feedback
		(id, session_id, created_at, titles, tags, year_floor, fingerprint, revealed, satisfaction, comment, answers)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.CreatedAt, string(titles), string(tags), r.YearFloor,
		r.Fingerprint, r.Revealed, r.Satisfaction, r.Comment, string(answers),
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	s.logger.Debug().Str("feedback_id", r.ID).Str("session_id", r.SessionID).
		Int("satisfaction", r.Satisfaction).Msg("feedback recorded")
	return nil
}

// Recent implements Store.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, session_id, created_at, titles, tags, year_floor, fingerprint, revealed, satisfaction, comment, answers
	FROM moviemate_feedback
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var (
			r                     Record
			titles, tags, answers string
		)
		if err := rows.Scan(&r.ID, &r.SessionID, &r.CreatedAt, &titles, &tags, &r.YearFloor,
			&r.Fingerprint, &r.Revealed, &r.Satisfaction, &r.Comment, &answers); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		if err := json.Unmarshal([]byte(titles), &r.Titles); err != nil {
			return nil, fmt.Errorf("decode titles of %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
			return nil, fmt.Errorf("decode answers of %s: %w", r.ID, err)
		}
		if len(r.Answers) == 0 {
			r.Answers = nil
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count implements Store.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM moviemate_feedback`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal list: %w", err)
	}
	return b, nil
}
