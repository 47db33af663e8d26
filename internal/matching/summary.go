package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/o1-match/internal/types"
)

// maxNamedMissingSkills is how many missing required skills the summary names before
// switching to a count.
const maxNamedMissingSkills = 3

// generateSummary creates a short explanation of a match result.
func generateSummary(category types.MatchCategory, breakdown *types.Breakdown) string {
	parts := []string{leadSentence(category)}

	score := breakdown.ScoreRequirement
	if score.Required > 0 && !score.Met {
		parts = append(parts, fmt.Sprintf("O-1 score of %d is %d points below the required %d.",
			score.Has, score.Required-score.Has, score.Required))
	}

	missingSkills := breakdown.MissingRequiredSkills()
	switch {
	case len(missingSkills) > maxNamedMissingSkills:
		parts = append(parts, fmt.Sprintf("Missing %d required skills.", len(missingSkills)))
	case len(missingSkills) > 0:
		parts = append(parts, fmt.Sprintf("Missing required skills: %s.", strings.Join(missingSkills, ", ")))
	}

	if missing := len(breakdown.MissingPreferredCriteria()); missing > 0 {
		noun := "criteria"
		if missing == 1 {
			noun = "criterion"
		}
		parts = append(parts, fmt.Sprintf("Missing %d preferred %s.", missing, noun))
	}

	return strings.Join(parts, " ")
}

func leadSentence(category types.MatchCategory) string {
	switch category {
	case types.CategoryExcellent:
		return "Excellent match!"
	case types.CategoryGood:
		return "Good potential match."
	case types.CategoryFair:
		return "Moderate match."
	default:
		return "Limited match."
	}
}
