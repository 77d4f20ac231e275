package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/java/codebase"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleResults() []codebase.Result {
	return []codebase.Result{
		{
			Path: "game/Board.java",
			Diagnostics: []check.Diagnostic{
				{Kind: check.MissingJavadoc, Line: 12, Column: 5},
				{Kind: check.ExpectedParamTag, Line: 20, Column: 30, Args: []string{"from"}},
			},
		},
		{
			Path: "game/Piece.java",
			Diagnostics: []check.Diagnostic{
				{Kind: check.MissingJavadoc, Line: 4, Column: 5},
			},
		},
		{Path: "game/Broken.java", Err: errors.New("read failed")},
	}
}

func TestOpenAppliesMigrations(t *testing.T) {
	s := setupTestStore(t)
	assert.Equal(t, "1.1.0", s.SchemaVersion())
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.RecordRun(ctx, time.Now(), sampleResults())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	run, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, run.Diagnostics)
}

func TestRecordRun(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	run, err := s.RecordRun(ctx, started, sampleResults())
	require.NoError(t, err)
	assert.Greater(t, run.ID, int64(0))
	assert.Equal(t, 3, run.Files)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 3, run.Diagnostics)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
	assert.True(t, got.StartedAt.Equal(started))
}

func TestLatestRun(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.LatestRun(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := s.RecordRun(ctx, time.Now(), sampleResults())
	require.NoError(t, err)
	second, err := s.RecordRun(ctx, time.Now(), sampleResults()[:1])
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 2, latest.Diagnostics)
}

func TestSummary(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	run, err := s.RecordRun(ctx, time.Now(), sampleResults())
	require.NoError(t, err)

	summary, err := s.Summary(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, summary.Run.ID)
	assert.Equal(t, map[string]int{
		"MissingJavadoc":   2,
		"ExpectedParamTag": 1,
	}, summary.ByKind)
	assert.Equal(t, []FileCount{
		{Path: "game/Board.java", Count: 2},
		{Path: "game/Piece.java", Count: 1},
	}, summary.ByFile)
}

func TestSummaryUnknownRun(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.Summary(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
