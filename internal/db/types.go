package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/o1-match/internal/types"
)

// JobStatusOpen is the only job_listings status considered for matching
const JobStatusOpen = "open"

// TalentRow represents a talent_profiles record
type TalentRow struct {
	ID              uuid.UUID `json:"id"`
	O1Score         int       `json:"o1_score"`
	CriteriaMet     []string  `json:"criteria_met"`
	Skills          []string  `json:"skills"`
	EducationLevel  *string   `json:"education_level,omitempty"`
	YearsExperience *float64  `json:"years_experience,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobRow represents a job_listings record
type JobRow struct {
	ID                uuid.UUID `json:"id"`
	MinScore          *int      `json:"min_score,omitempty"`
	PreferredCriteria []string  `json:"preferred_criteria"`
	RequiredSkills    []string  `json:"required_skills"`
	PreferredSkills   []string  `json:"preferred_skills"`
	RequiredEducation *string   `json:"required_education,omitempty"`
	MinExperience     *float64  `json:"min_experience,omitempty"`
	Status            string    `json:"status"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToMatchProfile narrows the row to the fields scoring reads.
func (r *TalentRow) ToMatchProfile() types.TalentMatchProfile {
	return types.TalentMatchProfile{
		ID:              r.ID.String(),
		O1Score:         r.O1Score,
		CriteriaMet:     toCriteria(r.CriteriaMet),
		Skills:          r.Skills,
		EducationLevel:  r.EducationLevel,
		YearsExperience: r.YearsExperience,
	}.Normalized()
}

// ToMatchProfile narrows the row to the fields scoring reads. A NULL min_score means no requirement.
func (r *JobRow) ToMatchProfile() types.JobMatchProfile {
	minScore := 0
	if r.MinScore != nil {
		minScore = *r.MinScore
	}
	return types.JobMatchProfile{
		ID:                r.ID.String(),
		MinScore:          minScore,
		PreferredCriteria: toCriteria(r.PreferredCriteria),
		RequiredSkills:    r.RequiredSkills,
		PreferredSkills:   r.PreferredSkills,
		RequiredEducation: r.RequiredEducation,
		MinExperience:     r.MinExperience,
	}.Normalized()
}

func toCriteria(labels []string) []types.Criterion {
	out := make([]types.Criterion, 0, len(labels))
	for _, l := range labels {
		out = append(out, types.Criterion(l))
	}
	return out
}
