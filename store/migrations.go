package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Migration is one schema change, applied in order of Version.
type Migration struct {
	Version string
	Up      string
}

var migrations = []Migration{
	{Version: "1.0.0", Up: migrationV1},
	{Version: "1.1.0", Up: migrationV1_1},
}

const migrationV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
	version    TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);

CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT    NOT NULL,
	files       INTEGER NOT NULL,
	diagnostics INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS diagnostics (
	run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	path    TEXT    NOT NULL,
	line    INTEGER NOT NULL,
	col     INTEGER NOT NULL,
	kind    TEXT    NOT NULL,
	message TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_diagnostics_run ON diagnostics(run_id);
`

// Files that could not be read or parsed are counted separately.
const migrationV1_1 = `
ALTER TABLE runs ADD COLUMN failed INTEGER NOT NULL DEFAULT 0;
`

// applyMigrations brings the schema up to the newest migration and
// returns the resulting version.
func applyMigrations(ctx context.Context, db *sql.DB) (*semver.Version, error) {
	current, err := schemaVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	for _, m := range migrations {
		version, err := semver.NewVersion(m.Version)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version %s: %w", m.Version, err)
		}
		if !current.LessThan(version) {
			continue
		}
		if _, err := db.ExecContext(ctx, m.Up); err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", m.Version, err)
		}
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return nil, fmt.Errorf("record migration %s: %w", m.Version, err)
		}
		current = version
	}
	return current, nil
}

func schemaVersion(ctx context.Context, db *sql.DB) (*semver.Version, error) {
	zero := semver.MustParse("0.0.0")

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check schema_version table: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_version")
	if err != nil {
		return nil, fmt.Errorf("read schema_version: %w", err)
	}
	defer rows.Close()

	current := zero
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid schema version %s: %w", s, err)
		}
		if current.LessThan(v) {
			current = v
		}
	}
	return current, rows.Err()
}
