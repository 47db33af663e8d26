package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEducationLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"PhD in Physics", EducationPhD},
		{"Ph.D.", EducationPhD},
		{"Doctorate", EducationPhD},
		{"Master of Science", EducationMaster},
		{"M.S.", EducationMaster},
		{"MBA", EducationMaster},
		{"MSCS", EducationMaster},
		{"Bachelor's degree", EducationBachelor},
		{"B.S. Computer Science", EducationBachelor},
		{"BA", EducationBachelor},
		{"BSEE", EducationBachelor},
		{"Associate of Arts", EducationAssociate},
		{"High School Diploma", EducationHighSchool},
		{"Information Systems", EducationMaster},
		{"", EducationHighSchool},
		{"   ", EducationHighSchool},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EducationLevel(tt.input))
		})
	}
}

func TestEducationLevel_HighestKeywordWins(t *testing.T) {
	assert.Equal(t, EducationPhD, EducationLevel("Bachelor and Master, then PhD"))
}

func TestEducationLevelName(t *testing.T) {
	assert.Equal(t, "high_school", EducationLevelName(EducationHighSchool))
	assert.Equal(t, "bachelor", EducationLevelName(EducationBachelor))
	assert.Equal(t, "phd", EducationLevelName(EducationPhD))
	assert.Equal(t, "high_school", EducationLevelName(-1))
	assert.Equal(t, "phd", EducationLevelName(9))
}

func TestMeetsEducationRequirement(t *testing.T) {
	tests := []struct {
		name     string
		talent   *string
		required *string
		expected bool
	}{
		{"no talent education", nil, strPtr("bachelor"), false},
		{"phd covers bachelor", strPtr("PhD"), strPtr("bachelor"), true},
		{"no requirement", strPtr("anything"), nil, true},
		{"neither set", nil, nil, true},
		{"blank requirement", nil, strPtr("  "), true},
		{"blank talent", strPtr(" "), strPtr("bachelor"), false},
		{"bachelor below master", strPtr("B.S."), strPtr("Master's"), false},
		{"same level different spelling", strPtr("Bachelor of Arts"), strPtr("BA"), true},
		{"unknown talent label ranks lowest", strPtr("bootcamp"), strPtr("high school"), true},
		{"run-together abbreviation", strPtr("MSCS"), strPtr("bachelor"), true},
		{"run-together bachelor below master", strPtr("BSEE"), strPtr("MS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetsEducationRequirement(tt.talent, tt.required))
		})
	}
}
