package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/o1-match/internal/types"
)

const jobColumns = `id, min_score, COALESCE(preferred_criteria, '{}'), COALESCE(required_skills, '{}'),
        COALESCE(preferred_skills, '{}'), required_education, min_experience::float8, status, updated_at`

func scanJob(row pgx.Row) (*JobRow, error) {
	var r JobRow
	if err := row.Scan(&r.ID, &r.MinScore, &r.PreferredCriteria, &r.RequiredSkills,
		&r.PreferredSkills, &r.RequiredEducation, &r.MinExperience, &r.Status, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetJobRow retrieves a job listing by ID regardless of status
func (db *DB) GetJobRow(ctx context.Context, id uuid.UUID) (*JobRow, error) {
	r, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_listings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return r, nil
}

// ListOpenJobRows retrieves open job listings, most recently updated first
func (db *DB) ListOpenJobRows(ctx context.Context, limit int) ([]JobRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_listings
		 WHERE status = $1
		 ORDER BY updated_at DESC, id`+limitClause(limit),
		JobStatusOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []JobRow
	for rows.Next() {
		r, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob returns the match profile for a job. Unknown or malformed ids return nil, nil.
func (db *DB) GetJob(ctx context.Context, id string) (*types.JobMatchProfile, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	r, err := db.GetJobRow(ctx, jobID)
	if err != nil || r == nil {
		return nil, err
	}
	profile := r.ToMatchProfile()
	return &profile, nil
}

// ListJobs returns match profiles for up to limit open jobs
func (db *DB) ListJobs(ctx context.Context, limit int) ([]types.JobMatchProfile, error) {
	rows, err := db.ListOpenJobRows(ctx, limit)
	if err != nil {
		return nil, err
	}
	profiles := make([]types.JobMatchProfile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].ToMatchProfile())
	}
	return profiles, nil
}
