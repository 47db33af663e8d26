package matching

import (
	"testing"

	"github.com/jonathan/o1-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSummary_LeadSentences(t *testing.T) {
	tests := []struct {
		category types.MatchCategory
		expected string
	}{
		{types.CategoryExcellent, "Excellent match!"},
		{types.CategoryGood, "Good potential match."},
		{types.CategoryFair, "Moderate match."},
		{types.CategoryPoor, "Limited match."},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, generateSummary(tt.category, &types.Breakdown{}))
		})
	}
}

func TestGenerateSummary_AllClauses(t *testing.T) {
	talent := &types.TalentMatchProfile{O1Score: 60}
	job := &types.JobMatchProfile{
		MinScore:          80,
		PreferredCriteria: []types.Criterion{types.CriterionAwards},
		RequiredSkills:    []string{"rust", "go", "java", "scala"},
	}

	result := CalculateMatchScore(talent, job)

	assert.Equal(t, 31, result.OverallScore)
	assert.Equal(t,
		"Limited match. O-1 score of 60 is 20 points below the required 80. Missing 4 required skills. Missing 1 preferred criterion.",
		result.Summary)
}

func TestGenerateSummary_NamesUpToThreeSkills(t *testing.T) {
	breakdown := &types.Breakdown{
		ScoreRequirement: types.ScoreRequirementMatch{Met: true},
		SkillsMatch: []types.SkillMatch{
			{Skill: "Rust", Required: true},
			{Skill: "Go", Required: true, Has: true},
			{Skill: "Kafka", Required: true},
			{Skill: "AWS", Required: false},
		},
	}

	assert.Equal(t, "Moderate match. Missing required skills: Rust, Kafka.", generateSummary(types.CategoryFair, breakdown))
}

func TestGenerateSummary_PluralCriteria(t *testing.T) {
	breakdown := &types.Breakdown{
		CriteriaMatch: []types.CriterionMatch{
			{Criterion: types.CriterionAwards, Required: true},
			{Criterion: types.CriterionJudging, Required: true},
			{Criterion: types.CriterionMembership, Required: false, Has: true, Points: 5},
		},
	}

	assert.Equal(t, "Good potential match. Missing 2 preferred criteria.", generateSummary(types.CategoryGood, breakdown))
}

func TestGenerateSummary_NoShortfallWithoutRequirement(t *testing.T) {
	breakdown := &types.Breakdown{
		ScoreRequirement: types.ScoreRequirementMatch{Required: 0, Has: 10, Met: false},
	}

	assert.Equal(t, "Limited match.", generateSummary(types.CategoryPoor, breakdown))
}
