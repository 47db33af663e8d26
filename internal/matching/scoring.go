package matching

import (
	"math"

	"github.com/jonathan/o1-match/internal/types"
)

// Weights for the four scoring components; they sum to 1.0.
const (
	scoreRequirementWeight    = 0.40
	criteriaOverlapWeight     = 0.30
	skillsMatchWeight         = 0.20
	educationExperienceWeight = 0.10
)

const (
	fullPoints = 100.0

	// score requirement
	scoreMetBase       = 80.0
	scoreSurplusBonus  = 0.5
	scoreShortfallCeil = 70.0

	// criteria overlap
	extraCriterionBonus = 5.0
	maxCriteriaBonus    = 20.0

	// skills
	requiredSkillsShare  = 60.0
	preferredSkillsShare = 40.0

	// education / experience
	educationUnmetPoints = 40.0
)

// CalculateMatchScore compares one talent to one job and returns the explained result.
// A nil profile is treated as empty. The function is pure and safe for concurrent use.
func CalculateMatchScore(talent *types.TalentMatchProfile, job *types.JobMatchProfile) types.MatchResult {
	if talent == nil {
		talent = &types.TalentMatchProfile{}
	}
	if job == nil {
		job = &types.JobMatchProfile{}
	}

	scorePoints, scoreMatch := computeScoreRequirement(talent, job)
	criteriaPoints, criteriaMatch := computeCriteriaOverlap(talent, job)
	skillsPoints, skillsMatch := computeSkillsMatch(talent, job)
	educationMatch := computeEducationMatch(talent, job)
	experienceMatch := computeExperienceMatch(talent, job)

	raw := scorePoints*scoreRequirementWeight +
		criteriaPoints*criteriaOverlapWeight +
		skillsPoints*skillsMatchWeight +
		((educationMatch.Points+experienceMatch.Points)/2)*educationExperienceWeight

	overall := clampScore(int(math.Round(raw)))
	category := Category(overall)

	breakdown := types.Breakdown{
		ScoreRequirement: scoreMatch,
		CriteriaMatch:    criteriaMatch,
		SkillsMatch:      skillsMatch,
		EducationMatch:   educationMatch,
		ExperienceMatch:  experienceMatch,
	}

	return types.MatchResult{
		OverallScore: overall,
		Category:     category,
		Breakdown:    breakdown,
		Summary:      generateSummary(category, &breakdown),
	}
}

// computeScoreRequirement awards 80 points plus half a point per point of surplus when the
// talent meets the job minimum (capped at 100), or up to 70 proportionally when short.
func computeScoreRequirement(talent *types.TalentMatchProfile, job *types.JobMatchProfile) (float64, types.ScoreRequirementMatch) {
	match := types.ScoreRequirementMatch{
		Required: job.MinScore,
		Has:      talent.O1Score,
	}

	if job.MinScore <= 0 {
		match.Required = 0
		match.Met = true
		match.Points = fullPoints
		return match.Points, match
	}

	if talent.O1Score >= job.MinScore {
		excess := float64(talent.O1Score - job.MinScore)
		match.Met = true
		match.Points = math.Min(fullPoints, scoreMetBase+excess*scoreSurplusBonus)
		return match.Points, match
	}

	ratio := float64(talent.O1Score) / float64(job.MinScore)
	match.Points = math.Round(ratio * scoreShortfallCeil)
	return match.Points, match
}

// computeCriteriaOverlap scores the share of preferred criteria the talent holds, plus a
// 5-point bonus per extra criterion (bonus capped at 20, total capped at 100).
func computeCriteriaOverlap(talent *types.TalentMatchProfile, job *types.JobMatchProfile) (float64, []types.CriterionMatch) {
	preferred := uniqueCriteria(job.PreferredCriteria)
	if len(preferred) == 0 {
		return fullPoints, []types.CriterionMatch{}
	}

	held := uniqueCriteria(talent.CriteriaMet)
	heldSet := make(map[types.Criterion]bool, len(held))
	for _, c := range held {
		heldSet[c] = true
	}
	preferredSet := make(map[types.Criterion]bool, len(preferred))
	for _, c := range preferred {
		preferredSet[c] = true
	}

	perCriterion := fullPoints / float64(len(preferred))
	entries := make([]types.CriterionMatch, 0, len(preferred)+len(held))

	matched := 0
	for _, c := range preferred {
		entry := types.CriterionMatch{Criterion: c, Required: true, Has: heldSet[c]}
		if entry.Has {
			matched++
			entry.Points = perCriterion
		}
		entries = append(entries, entry)
	}

	extras := 0
	for _, c := range held {
		if preferredSet[c] {
			continue
		}
		extras++
		entries = append(entries, types.CriterionMatch{
			Criterion: c,
			Required:  false,
			Has:       true,
			Points:    extraCriterionBonus,
		})
	}

	base := float64(matched) / float64(len(preferred)) * fullPoints
	bonus := math.Min(maxCriteriaBonus, float64(extras)*extraCriterionBonus)
	return math.Min(fullPoints, base+bonus), entries
}

// computeSkillsMatch gives required skills 60 points and preferred skills 40. Any missing
// required skill caps the result at its proportional share of 60 with no preferred credit.
func computeSkillsMatch(talent *types.TalentMatchProfile, job *types.JobMatchProfile) (float64, []types.SkillMatch) {
	required := job.RequiredSkills
	preferred := job.PreferredSkills
	if len(required) == 0 && len(preferred) == 0 {
		return fullPoints, []types.SkillMatch{}
	}

	entries := make([]types.SkillMatch, 0, len(required)+len(preferred))

	requiredMatched := 0
	for _, skill := range required {
		entry := types.SkillMatch{Skill: skill, Required: true, Has: hasSkill(talent.Skills, skill)}
		if entry.Has {
			requiredMatched++
			entry.Points = fullPoints / float64(len(required))
		}
		entries = append(entries, entry)
	}

	preferredMatched := 0
	for _, skill := range preferred {
		entry := types.SkillMatch{Skill: skill, Required: false, Has: hasSkill(talent.Skills, skill)}
		if entry.Has {
			preferredMatched++
			entry.Points = (fullPoints / 2) / float64(len(preferred))
		}
		entries = append(entries, entry)
	}

	if requiredMatched < len(required) {
		ratio := float64(requiredMatched) / float64(len(required))
		return math.Round(ratio * requiredSkillsShare), entries
	}

	points := requiredSkillsShare
	if len(preferred) > 0 {
		points += float64(preferredMatched) / float64(len(preferred)) * preferredSkillsShare
	} else {
		points += preferredSkillsShare
	}
	return points, entries
}

func computeEducationMatch(talent *types.TalentMatchProfile, job *types.JobMatchProfile) types.EducationMatch {
	match := types.EducationMatch{
		Required: cloneString(job.RequiredEducation),
		Has:      cloneString(talent.EducationLevel),
		Met:      MeetsEducationRequirement(talent.EducationLevel, job.RequiredEducation),
	}
	if match.Met {
		match.Points = fullPoints
	} else {
		match.Points = educationUnmetPoints
	}
	return match
}

// computeExperienceMatch steps down from 100 to 80/60/30 as the talent's share of the
// required years drops below 100%, 75% and 50%.
func computeExperienceMatch(talent *types.TalentMatchProfile, job *types.JobMatchProfile) types.ExperienceMatch {
	match := types.ExperienceMatch{
		Required: cloneFloat(job.MinExperience),
		Has:      cloneFloat(talent.YearsExperience),
	}

	if job.MinExperience == nil || *job.MinExperience <= 0 {
		match.Met = true
		match.Points = fullPoints
		return match
	}

	years := 0.0
	if talent.YearsExperience != nil {
		years = *talent.YearsExperience
	}
	minYears := *job.MinExperience

	switch ratio := years / minYears; {
	case years >= minYears:
		match.Met = true
		match.Points = fullPoints
	case ratio >= 0.75:
		match.Points = 80
	case ratio >= 0.5:
		match.Points = 60
	default:
		match.Points = 30
	}
	return match
}

// uniqueCriteria canonicalizes criteria labels and drops blanks and duplicates, keeping order.
func uniqueCriteria(in []types.Criterion) []types.Criterion {
	out := make([]types.Criterion, 0, len(in))
	seen := make(map[types.Criterion]bool, len(in))
	for _, c := range in {
		key := types.ParseCriterion(string(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
