package localdb

import (
	"time"

	"github.com/jonathan/o1-match/internal/types"
	"gorm.io/datatypes"
)

// JobStatusOpen marks a job that takes part in matching
const JobStatusOpen = "open"

// TalentRecord is the SQLite row for a talent profile
type TalentRecord struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	O1Score         int                         `gorm:"index" json:"o1_score"`
	CriteriaMet     datatypes.JSONSlice[string] `json:"criteria_met"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	EducationLevel  *string                     `json:"education_level,omitempty"`
	YearsExperience *float64                    `json:"years_experience,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// TableName keeps the table name aligned with the PostgreSQL schema
func (TalentRecord) TableName() string { return "talent_profiles" }

// JobRecord is the SQLite row for a job listing
type JobRecord struct {
	ID                string                      `gorm:"primaryKey" json:"id"`
	MinScore          int                         `json:"min_score"`
	PreferredCriteria datatypes.JSONSlice[string] `json:"preferred_criteria"`
	RequiredSkills    datatypes.JSONSlice[string] `json:"required_skills"`
	PreferredSkills   datatypes.JSONSlice[string] `json:"preferred_skills"`
	RequiredEducation *string                     `json:"required_education,omitempty"`
	MinExperience     *float64                    `json:"min_experience,omitempty"`
	Status            string                      `gorm:"index;default:open" json:"status"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// TableName keeps the table name aligned with the PostgreSQL schema
func (JobRecord) TableName() string { return "job_listings" }

// NewTalentRecord converts a match profile into a storable record
func NewTalentRecord(p *types.TalentMatchProfile) TalentRecord {
	criteria := make([]string, 0, len(p.CriteriaMet))
	for _, c := range p.CriteriaMet {
		criteria = append(criteria, string(c))
	}
	return TalentRecord{
		ID:              p.ID,
		O1Score:         p.O1Score,
		CriteriaMet:     datatypes.NewJSONSlice(criteria),
		Skills:          datatypes.NewJSONSlice(append([]string{}, p.Skills...)),
		EducationLevel:  p.EducationLevel,
		YearsExperience: p.YearsExperience,
	}
}

// NewJobRecord converts a match profile into an open job record
func NewJobRecord(p *types.JobMatchProfile) JobRecord {
	criteria := make([]string, 0, len(p.PreferredCriteria))
	for _, c := range p.PreferredCriteria {
		criteria = append(criteria, string(c))
	}
	return JobRecord{
		ID:                p.ID,
		MinScore:          p.MinScore,
		PreferredCriteria: datatypes.NewJSONSlice(criteria),
		RequiredSkills:    datatypes.NewJSONSlice(append([]string{}, p.RequiredSkills...)),
		PreferredSkills:   datatypes.NewJSONSlice(append([]string{}, p.PreferredSkills...)),
		RequiredEducation: p.RequiredEducation,
		MinExperience:     p.MinExperience,
		Status:            JobStatusOpen,
	}
}

// ToMatchProfile narrows the record to the fields scoring reads
func (r *TalentRecord) ToMatchProfile() types.TalentMatchProfile {
	return types.TalentMatchProfile{
		ID:              r.ID,
		O1Score:         r.O1Score,
		CriteriaMet:     toCriteria(r.CriteriaMet),
		Skills:          []string(r.Skills),
		EducationLevel:  r.EducationLevel,
		YearsExperience: r.YearsExperience,
	}.Normalized()
}

// ToMatchProfile narrows the record to the fields scoring reads
func (r *JobRecord) ToMatchProfile() types.JobMatchProfile {
	return types.JobMatchProfile{
		ID:                r.ID,
		MinScore:          r.MinScore,
		PreferredCriteria: toCriteria(r.PreferredCriteria),
		RequiredSkills:    []string(r.RequiredSkills),
		PreferredSkills:   []string(r.PreferredSkills),
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
