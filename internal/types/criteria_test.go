//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		input    string
		expected Criterion
	}{
		{"awards", CriterionAwards},
		{"Awards", CriterionAwards},
		{"  published material ", CriterionPublishedMaterial},
		{"published-material", CriterionPublishedMaterial},
		{"Original Contributions", CriterionOriginalContribution},
		{"high salary", CriterionHighRemuneration},
		{"press", CriterionPublishedMaterial},
		{"Something Else", Criterion("something_else")},
		{"", Criterion("")},
		{"   ", Criterion("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCriterion(tt.input))
		})
	}
}

func TestAllCriteria(t *testing.T) {
	all := AllCriteria()
	assert.Len(t, all, 8)
	for _, c := range all {
		assert.True(t, c.IsKnown(), "%s should be known", c)
	}

	// callers cannot mutate the package list
	all[0] = "mutated"
	assert.Equal(t, CriterionAwards, AllCriteria()[0])
}

func TestCriterion_IsKnown(t *testing.T) {
	assert.True(t, CriterionJudging.IsKnown())
	assert.False(t, Criterion("something_else").IsKnown())
}
