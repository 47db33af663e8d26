package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/o1-match/internal/matching"
	"github.com/jonathan/o1-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestPrintTalentProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTalentProfile(&types.TalentMatchProfile{
		ID:              "talent-1",
		O1Score:         82,
		CriteriaMet:     []types.Criterion{types.CriterionAwards, types.CriterionJudging},
		Skills:          []string{"Go", "Kubernetes"},
		EducationLevel:  strPtr("M.S. Physics"),
		YearsExperience: floatPtr(7),
	})
	output := buf.String()

	assert.Contains(t, output, "TALENT PROFILE")
	assert.Contains(t, output, "talent-1")
	assert.Contains(t, output, "O-1 score: 82")
	assert.Contains(t, output, "M.S. Physics (master)")
	assert.Contains(t, output, "awards, judging")
	assert.Contains(t, output, "Coverage:  2/8 O-1 criteria")
	assert.Contains(t, output, "Go, Kubernetes")
}

func TestPrintTalentProfile_UnknownCriteria(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTalentProfile(&types.TalentMatchProfile{
		ID:          "talent-2",
		CriteriaMet: []types.Criterion{types.CriterionAwards, "side_projects", types.CriterionAwards},
	})
	output := buf.String()

	assert.Contains(t, output, "awards, side_projects?, awards")
	assert.Contains(t, output, "Coverage:  1/8 O-1 criteria")
}

func TestPrintJobProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobProfile(&types.JobMatchProfile{
		ID:                "job-1",
		MinScore:          70,
		PreferredCriteria: []types.Criterion{types.CriterionAwards},
		RequiredSkills:    []string{"Python"},
		PreferredSkills:   []string{"AWS"},
		RequiredEducation: strPtr("bachelor"),
		MinExperience:     floatPtr(3),
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "Minimum O-1 score: 70")
	assert.Contains(t, output, "Required skills: Python")
	assert.Contains(t, output, "Nice-to-haves: AWS")
	assert.Contains(t, output, "Experience: 3.0 years")
	assert.NotContains(t, output, "No stated requirements")
}

func TestPrintJobProfile_NoRequirements(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobProfile(&types.JobMatchProfile{ID: "open-job"})

	assert.Contains(t, buf.String(), "No stated requirements")
}

func TestPrint_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTalentProfile(nil)
	p.PrintJobProfile(nil)
	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := matching.CalculateMatchScore(
		&types.TalentMatchProfile{O1Score: 75, CriteriaMet: []types.Criterion{types.CriterionAwards, types.CriterionMembership}, Skills: []string{"python"}},
		&types.JobMatchProfile{
			MinScore:          70,
			PreferredCriteria: []types.Criterion{types.CriterionAwards, types.CriterionJudging},
			RequiredSkills:    []string{"python", "rust"},
			PreferredSkills:   []string{"aws"},
		},
	)

	p.PrintMatchResult(&result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, fmt.Sprintf("Overall: %d (%s)", result.OverallScore, result.Category))
	assert.Contains(t, output, "✓ O-1 score 75 / 70")
	assert.Contains(t, output, "✗ judging")
	assert.Contains(t, output, "membership (extra)")
	assert.Contains(t, output, "✗ rust [required]")
	assert.Contains(t, output, "✓ education")
}

func TestPrintMatchResult_ManySkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := matching.CalculateMatchScore(
		&types.TalentMatchProfile{},
		&types.JobMatchProfile{RequiredSkills: []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}},
	)
	p.PrintMatchResult(&result)

	assert.Contains(t, buf.String(), "... and 2 more skills")
}

func TestPrintJobMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	talent := &types.TalentMatchProfile{ID: "t-1", O1Score: 80, Skills: []string{"go"}}
	jobs := make([]types.JobMatchProfile, 7)
	for i := range jobs {
		jobs[i] = types.JobMatchProfile{ID: fmt.Sprintf("job-%d", i)}
	}
	jobs[6].RequiredSkills = []string{"rust"}

	p.PrintJobMatches(talent.ID, matching.GetBestJobMatches(talent, jobs, 10))
	output := buf.String()

	assert.Contains(t, output, "TOP JOBS FOR t-1")
	assert.Contains(t, output, "Total ranked: 7")
	assert.Contains(t, output, "#1  job-0")
	assert.Contains(t, output, "Score: 100 (excellent)")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "#6")
}

func TestPrintTalentMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTalentMatches("job-1", nil)

	output := buf.String()
	assert.Contains(t, output, "TOP TALENTS FOR job-1")
	assert.Contains(t, output, "No matches")
}

func TestPrintTalentMatches_ShowsMissingSkills(t *testing.T) {
	var buf bytes.Buffer
	job := &types.JobMatchProfile{ID: "job-1", RequiredSkills: []string{"rust"}}

	NewPrinter(&buf).PrintTalentMatches(job.ID, matching.GetBestTalentMatches(job, []types.TalentMatchProfile{{ID: "t-1"}}, 0))

	assert.Contains(t, buf.String(), "Missing: rust")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "...")
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
