package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/o1-match/internal/types"
)

const talentColumns = `id, o1_score, COALESCE(criteria_met, '{}'), COALESCE(skills, '{}'),
        education_level, years_experience::float8, updated_at`

func scanTalent(row pgx.Row) (*TalentRow, error) {
	var r TalentRow
	if err := row.Scan(&r.ID, &r.O1Score, &r.CriteriaMet, &r.Skills,
		&r.EducationLevel, &r.YearsExperience, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetTalentRow retrieves a talent record by ID
func (db *DB) GetTalentRow(ctx context.Context, id uuid.UUID) (*TalentRow, error) {
	r, err := scanTalent(db.pool.QueryRow(ctx,
		`SELECT `+talentColumns+` FROM talent_profiles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get talent: %w", err)
	}
	return r, nil
}

// ListTalentRows retrieves talents ordered by O-1 score, highest first
func (db *DB) ListTalentRows(ctx context.Context, limit int) ([]TalentRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+talentColumns+` FROM talent_profiles
		 ORDER BY o1_score DESC, id`+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	var talents []TalentRow
	for rows.Next() {
		r, err := scanTalent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		talents = append(talents, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	return talents, nil
}

// GetTalent returns the match profile for a talent. Unknown or malformed ids return nil, nil.
func (db *DB) GetTalent(ctx context.Context, id string) (*types.TalentMatchProfile, error) {
	talentID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	r, err := db.GetTalentRow(ctx, talentID)
	if err != nil || r == nil {
		return nil, err
	}
	profile := r.ToMatchProfile()
	return &profile, nil
}

// ListTalents returns match profiles for up to limit talents
func (db *DB) ListTalents(ctx context.Context, limit int) ([]types.TalentMatchProfile, error) {
	rows, err := db.ListTalentRows(ctx, limit)
	if err != nil {
		return nil, err
	}
	profiles := make([]types.TalentMatchProfile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].ToMatchProfile())
	}
	return profiles, nil
}
