package matching

import (
	"sort"

	"github.com/jonathan/o1-match/internal/types"
)

// DefaultRankLimit is the number of matches returned when no positive limit is given.
const DefaultRankLimit = 10

// GetBestJobMatches scores every job against the talent and returns the best matches,
// sorted by overall score descending. Ties keep input order. limit <= 0 means DefaultRankLimit.
func GetBestJobMatches(talent *types.TalentMatchProfile, jobs []types.JobMatchProfile, limit int) []types.JobMatch {
	matches := make([]types.JobMatch, 0, len(jobs))
	for i := range jobs {
		matches = append(matches, types.JobMatch{
			Job:    jobs[i],
			Result: CalculateMatchScore(talent, &jobs[i]),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Result.OverallScore > matches[j].Result.OverallScore
	})

	return matches[:truncateAt(len(matches), limit)]
}

// GetBestTalentMatches scores every talent against the job and returns the best matches,
// sorted by overall score descending. Ties keep input order. limit <= 0 means DefaultRankLimit.
func GetBestTalentMatches(job *types.JobMatchProfile, talents []types.TalentMatchProfile, limit int) []types.TalentMatch {
	matches := make([]types.TalentMatch, 0, len(talents))
	for i := range talents {
		matches = append(matches, types.TalentMatch{
			Talent: talents[i],
			Result: CalculateMatchScore(&talents[i], job),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Result.OverallScore > matches[j].Result.OverallScore
	})

	return matches[:truncateAt(len(matches), limit)]
}

func truncateAt(n, limit int) int {
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	return min(n, limit)
}
