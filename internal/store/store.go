// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/flick/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for gesture data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gestures (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			momentum INTEGER NOT NULL,
			bounce INTEGER NOT NULL,
			settle_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS gesture_axes (
			gesture_id INTEGER NOT NULL,
			axis TEXT NOT NULL,
			start_pos REAL NOT NULL,
			end_pos REAL NOT NULL,
			destination REAL NOT NULL,
			distance REAL NOT NULL,
			direction INTEGER NOT NULL,
			has_scroll INTEGER NOT NULL,
			momentum INTEGER NOT NULL,
			PRIMARY KEY (gesture_id, axis)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_gestures_ended_at ON gestures(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_gesture_axes_axis ON gesture_axes(axis);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertGesture stores a completed gesture and its per-axis results.
func (s *Store) InsertGesture(ctx context.Context, stats model.GestureStats, axes []model.AxisStats) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO gestures (started_at, ended_at, duration_ms, momentum, bounce, settle_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.DurationMs,
		boolInt(stats.Momentum),
		boolInt(stats.Bounce),
		stats.SettleMs,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(axes) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO gesture_axes (gesture_id, axis, start_pos, end_pos, destination, distance, direction, has_scroll, momentum)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, a := range axes {
			if _, err := stmt.ExecContext(ctx, id, a.Axis, a.StartPos, a.EndPos, a.Destination, a.Distance,
				a.Direction, boolInt(a.HasScroll), boolInt(a.Momentum)); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListGestures returns gesture aggregates filtered by stats config, oldest
// first. Last keeps only the most recent gestures.
func (s *Store) ListGestures(ctx context.Context, cfg model.StatsConfig) ([]model.GestureAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "g.ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	limit := -1
	if cfg.Last > 0 {
		limit = cfg.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT id, ended_at, duration_ms, momentum, bounce, settle_ms, distance_x, distance_y
		FROM (
			SELECT g.id, g.ended_at, g.duration_ms, g.momentum, g.bounce, g.settle_ms,
				COALESCE(SUM(CASE WHEN a.axis = 'x' THEN a.distance END), 0.0) AS distance_x,
				COALESCE(SUM(CASE WHEN a.axis = 'y' THEN a.distance END), 0.0) AS distance_y
			FROM gestures g
			LEFT JOIN gesture_axes a ON a.gesture_id = g.id
			WHERE %s
			GROUP BY g.id
			ORDER BY g.ended_at DESC, g.id DESC
			LIMIT ?
		)
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var gestures []model.GestureAggregate
	for rows.Next() {
		var agg model.GestureAggregate
		var endedAt string
		var momentum, bounce int
		if err := rows.Scan(&agg.GestureID, &endedAt, &agg.DurationMs, &momentum, &bounce, &agg.SettleMs,
			&agg.DistanceX, &agg.DistanceY); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.Momentum = momentum != 0
		agg.Bounce = bounce != 0
		gestures = append(gestures, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return gestures, nil
}

// ListAxisAggregates aggregates per-axis stats across gestures. Axes that
// could not scroll are skipped.
func (s *Store) ListAxisAggregates(ctx context.Context, gestureIDs []int64) ([]model.AxisAggregate, error) {
	if len(gestureIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(gestureIDs))
	args := make([]any, len(gestureIDs))
	for i, id := range gestureIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT a.axis, COUNT(*) AS gestures, SUM(a.momentum) AS momentum,
		SUM(ABS(a.distance)) AS distance_sum, MAX(ABS(a.distance)) AS distance_max,
		SUM(ABS(a.destination - a.start_pos)) AS travel_sum, SUM(g.duration_ms) AS duration_sum_ms
		FROM gesture_axes a
		JOIN gestures g ON g.id = a.gesture_id
		WHERE a.has_scroll = 1 AND a.gesture_id IN (%s)
		GROUP BY a.axis
		ORDER BY a.axis`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.AxisAggregate
	for rows.Next() {
		var agg model.AxisAggregate
		if err := rows.Scan(&agg.Axis, &agg.Gestures, &agg.Momentum, &agg.DistanceSum, &agg.DistanceMax,
			&agg.TravelSum, &agg.DurationSumMs); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
