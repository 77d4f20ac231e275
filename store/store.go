// Package store records check runs in a SQLite database so results can
// be compared over time.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
	_ "modernc.org/sqlite"

	"github.com/dhamidi/style61b/java/codebase"
)

const driverName = "sqlite"

var ErrNotFound = errors.New("not found")

type Store struct {
	db      *sql.DB
	version *semver.Version
}

// Run is one recorded invocation of the checker.
type Run struct {
	ID          int64
	StartedAt   time.Time
	Files       int
	Failed      int
	Diagnostics int
}

type FileCount struct {
	Path  string
	Count int
}

// Summary aggregates the diagnostics of one run.
type Summary struct {
	Run    Run
	ByKind map[string]int
	ByFile []FileCount
}

func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// Open opens or creates the database at path and migrates it to the
// current schema. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := openDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	version, err := applyMigrations(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &Store{db: db, version: version}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SchemaVersion reports the version of the newest applied migration.
func (s *Store) SchemaVersion() string {
	return s.version.String()
}

// RecordRun stores the results of one run in a single transaction.
func (s *Store) RecordRun(ctx context.Context, startedAt time.Time, results []codebase.Result) (Run, error) {
	diagnostics, failed := codebase.Count(results)
	run := Run{
		StartedAt:   startedAt.UTC(),
		Files:       len(results),
		Failed:      failed,
		Diagnostics: diagnostics,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (started_at, files, failed, diagnostics) VALUES (?, ?, ?, ?)",
		run.StartedAt.Format(time.RFC3339Nano), run.Files, run.Failed, run.Diagnostics)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	if run.ID, err = res.LastInsertId(); err != nil {
		return Run{}, err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO diagnostics (run_id, path, line, col, kind, message) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return Run{}, err
	}
	defer stmt.Close()

	for _, r := range results {
		for _, d := range r.Diagnostics {
			if _, err := stmt.ExecContext(ctx, run.ID, r.Path, d.Line, d.Column, string(d.Kind), d.Message()); err != nil {
				return Run{}, fmt.Errorf("insert diagnostic: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, started_at, files, failed, diagnostics FROM runs WHERE id = ?", id)
	return scanRun(row)
}

// LatestRun returns the most recently recorded run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, started_at, files, failed, diagnostics FROM runs ORDER BY id DESC LIMIT 1")
	return scanRun(row)
}

func scanRun(row *sql.Row) (Run, error) {
	var (
		run       Run
		startedAt string
	)
	err := row.Scan(&run.ID, &startedAt, &run.Files, &run.Failed, &run.Diagnostics)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, err
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return Run{}, fmt.Errorf("run %d: %w", run.ID, err)
	}
	return run, nil
}

// Summary counts the diagnostics of a run per kind and per file. Files
// are ordered by descending count, then by path.
func (s *Store) Summary(ctx context.Context, runID int64) (*Summary, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Run: run, ByKind: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx,
		"SELECT kind, COUNT(*) FROM diagnostics WHERE run_id = ? GROUP BY kind", runID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			kind  string
			count int
		)
		if err := rows.Scan(&kind, &count); err != nil {
			rows.Close()
			return nil, err
		}
		summary.ByKind[kind] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT path, COUNT(*) FROM diagnostics WHERE run_id = ? GROUP BY path", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var fc FileCount
		if err := rows.Scan(&fc.Path, &fc.Count); err != nil {
			return nil, err
		}
		summary.ByFile = append(summary.ByFile, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(summary.ByFile, func(i, j int) bool {
		a, b := summary.ByFile[i], summary.ByFile[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Path < b.Path
	})
	return summary, nil
}
