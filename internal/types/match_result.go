// Package types provides type definitions for structured data used throughout the o1-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchCategory is the coarse bucket derived from an overall match score.
type MatchCategory string

// Match categories, best first.
const (
	CategoryExcellent MatchCategory = "excellent"
	CategoryGood      MatchCategory = "good"
	CategoryFair      MatchCategory = "fair"
	CategoryPoor      MatchCategory = "poor"
)

// MatchResult is the computed outcome of comparing one talent to one job.
type MatchResult struct {
	OverallScore int           `json:"overall_score"`
	Category     MatchCategory `json:"category"`
	Breakdown    Breakdown     `json:"breakdown"`
	Summary      string        `json:"summary"`
}

// Breakdown carries per-factor detail used to explain a MatchResult.
type Breakdown struct {
	ScoreRequirement ScoreRequirementMatch `json:"score_requirement"`
	CriteriaMatch    []CriterionMatch      `json:"criteria_match"`
	SkillsMatch      []SkillMatch          `json:"skills_match"`
	EducationMatch   EducationMatch        `json:"education_match"`
	ExperienceMatch  ExperienceMatch       `json:"experience_match"`
}

// ScoreRequirementMatch compares the talent's O-1 score to the job minimum.
// Required is 0 when the job states no minimum.
type ScoreRequirementMatch struct {
	Required int     `json:"required"`
	Has      int     `json:"has"`
	Met      bool    `json:"met"`
	Points   float64 `json:"points"`
}

// CriterionMatch is one preferred criterion (Required=true) or one extra criterion
// the talent holds beyond the job's preferences (Required=false).
type CriterionMatch struct {
	Criterion Criterion `json:"criterion"`
	Required  bool      `json:"required"`
	Has       bool      `json:"has"`
	Points    float64   `json:"points"`
}

// SkillMatch is one required (Required=true) or preferred skill of the job.
type SkillMatch struct {
	Skill    string  `json:"skill"`
	Required bool    `json:"required"`
	Has      bool    `json:"has"`
	Points   float64 `json:"points"`
}

// EducationMatch compares education labels.
type EducationMatch struct {
	Required *string `json:"required"`
	Has      *string `json:"has"`
	Met      bool    `json:"met"`
	Points   float64 `json:"points"`
}

// ExperienceMatch compares years of experience.
type ExperienceMatch struct {
	Required *float64 `json:"required"`
	Has      *float64 `json:"has"`
	Met      bool     `json:"met"`
	Points   float64  `json:"points"`
}

// MissingRequiredSkills returns the required skills the talent lacks, in job order.
func (b *Breakdown) MissingRequiredSkills() []string {
	var missing []string
	for _, s := range b.SkillsMatch {
		if s.Required && !s.Has {
			missing = append(missing, s.Skill)
		}
	}
	return missing
}

// MissingPreferredCriteria returns the preferred criteria the talent lacks.
func (b *Breakdown) MissingPreferredCriteria() []Criterion {
	var missing []Criterion
	for _, c := range b.CriteriaMatch {
		if c.Required && !c.Has {
			missing = append(missing, c.Criterion)
		}
	}
	return missing
}

// JobMatch pairs a job with its match result for one talent.
type JobMatch struct {
	Job    JobMatchProfile `json:"job"`
	Result MatchResult     `json:"result"`
}

// TalentMatch pairs a talent with its match result for one job.
type TalentMatch struct {
	Talent TalentMatchProfile `json:"talent"`
	Result MatchResult        `json:"result"`
}

// MatchRequest is the body for scoring an ad-hoc talent/job pair.
type MatchRequest struct {
	Talent *TalentMatchProfile `json:"talent" validate:"required"`
	Job    *JobMatchProfile    `json:"job" validate:"required"`
}

// JobMatches is the ranked list of jobs for one talent, as served and written by the CLI.
type JobMatches struct {
	TalentID string     `json:"talent_id"`
	Matches  []JobMatch `json:"matches"`
}

// TalentMatches is the ranked list of talents for one job.
type TalentMatches struct {
	JobID   string        `json:"job_id"`
	Matches []TalentMatch `json:"matches"`
}
