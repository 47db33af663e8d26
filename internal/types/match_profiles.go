// Package types provides type definitions for structured data used throughout the o1-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// TalentMatchProfile is the matching-relevant snapshot of a talent's qualifications.
type TalentMatchProfile struct {
	ID              string      `json:"id" yaml:"id" validate:"required"`
	O1Score         int         `json:"o1_score" yaml:"o1_score" validate:"gte=0,lte=100"`
	CriteriaMet     []Criterion `json:"criteria_met" yaml:"criteria_met"`
	Skills          []string    `json:"skills" yaml:"skills"`
	EducationLevel  *string     `json:"education_level,omitempty" yaml:"education_level,omitempty"`
	YearsExperience *float64    `json:"years_experience,omitempty" yaml:"years_experience,omitempty" validate:"omitempty,gte=0"`
}

// JobMatchProfile is the matching-relevant subset of a job listing.
type JobMatchProfile struct {
	ID                string      `json:"id" yaml:"id" validate:"required"`
	MinScore          int         `json:"min_score,omitempty" yaml:"min_score,omitempty" validate:"gte=0,lte=100"`
	PreferredCriteria []Criterion `json:"preferred_criteria" yaml:"preferred_criteria"`
	RequiredSkills    []string    `json:"required_skills" yaml:"required_skills"`
	PreferredSkills   []string    `json:"preferred_skills" yaml:"preferred_skills"`
	RequiredEducation *string     `json:"required_education,omitempty" yaml:"required_education,omitempty"`
	MinExperience     *float64    `json:"min_experience,omitempty" yaml:"min_experience,omitempty" validate:"omitempty,gte=0"`
}

// Validate validates the TalentMatchProfile using the validator.
func (p *TalentMatchProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the JobMatchProfile using the validator.
func (p *JobMatchProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Normalized returns a copy with blank and duplicate criteria/skills removed.
// Duplicates are detected on the normalized form; the first spelling is kept.
func (p TalentMatchProfile) Normalized() TalentMatchProfile {
	out := p
	out.CriteriaMet = dedupeCriteria(p.CriteriaMet)
	out.Skills = dedupeSkills(p.Skills)
	out.EducationLevel = trimOptional(p.EducationLevel)
	return out
}

// Normalized returns a copy with blank and duplicate criteria/skills removed.
func (p JobMatchProfile) Normalized() JobMatchProfile {
	out := p
	out.PreferredCriteria = dedupeCriteria(p.PreferredCriteria)
	out.RequiredSkills = dedupeSkills(p.RequiredSkills)
	out.PreferredSkills = dedupeSkills(p.PreferredSkills)
	out.RequiredEducation = trimOptional(p.RequiredEducation)
	return out
}

// HasRequirements reports whether the job states any requirement at all.
func (p *JobMatchProfile) HasRequirements() bool {
	return p.MinScore > 0 ||
		len(p.PreferredCriteria) > 0 ||
		len(p.RequiredSkills) > 0 ||
		len(p.PreferredSkills) > 0 ||
		p.RequiredEducation != nil ||
		(p.MinExperience != nil && *p.MinExperience > 0)
}

func dedupeCriteria(in []Criterion) []Criterion {
	out := make([]Criterion, 0, len(in))
	seen := make(map[Criterion]bool, len(in))
	for _, c := range in {
		key := ParseCriterion(string(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// dedupeSkills keys on lower-cased alphanumerics, the same form skill matching compares.
func dedupeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		trimmed := strings.TrimSpace(s)
		key := strings.Map(func(r rune) rune {
			r = unicode.ToLower(r)
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Validate validates the MatchRequest and both nested profiles.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
