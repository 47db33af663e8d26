// Package store selects the backend that supplies talent and job match profiles.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/o1-match/internal/config"
	"github.com/jonathan/o1-match/internal/db"
	"github.com/jonathan/o1-match/internal/localdb"
	"github.com/jonathan/o1-match/internal/types"
)

// Store reads match profiles. Get methods return nil, nil for unknown ids.
type Store interface {
	GetTalent(ctx context.Context, id string) (*types.TalentMatchProfile, error)
	GetJob(ctx context.Context, id string) (*types.JobMatchProfile, error)
	ListTalents(ctx context.Context, limit int) ([]types.TalentMatchProfile, error)
	ListJobs(ctx context.Context, limit int) ([]types.JobMatchProfile, error)
	Close() error
}

var (
	_ Store = (*db.DB)(nil)
	_ Store = (*localdb.Store)(nil)
)

// ErrNoBackend is returned when neither a database URL nor a SQLite path is configured
var ErrNoBackend = errors.New("no store configured: set database_url or sqlite_path")

// Open connects to PostgreSQL when a database URL is configured, otherwise opens the SQLite catalog.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return pg, nil
	case cfg.SQLitePath != "":
		local, err := localdb.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return local, nil
	default:
		return nil, ErrNoBackend
	}
}
