package matching

import "github.com/jonathan/o1-match/internal/types"

// Category thresholds (inclusive lower bounds).
const (
	excellentThreshold = 85
	goodThreshold      = 70
	fairThreshold      = 50
)

// Category returns the match category for an overall score.
func Category(score int) types.MatchCategory {
	switch {
	case score >= excellentThreshold:
		return types.CategoryExcellent
	case score >= goodThreshold:
		return types.CategoryGood
	case score >= fairThreshold:
		return types.CategoryFair
	default:
		return types.CategoryPoor
	}
}
