package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jonathan/o1-match/internal/config"
	"github.com/jonathan/o1-match/internal/localdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{SQLitePath: filepath.Join(t.TempDir(), "o1match.db")}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok := s.(*localdb.Store)
	assert.True(t, ok, "expected sqlite store")

	jobs, err := s.ListJobs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestOpen_NoBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{})
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestOpen_BadDatabaseURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://%zz"}

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres store")
}
