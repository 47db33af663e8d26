package matching

import (
	"strings"
)

// Education levels on the ordinal scale used for requirement comparison.
const (
	EducationHighSchool = iota
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationPhD
)

// educationLevelNames maps ranks back to their labels
var educationLevelNames = []string{"high_school", "associate", "bachelor", "master", "phd"}

// degreeKeywords are matched as substrings of the cleaned label, highest rank first.
var degreeKeywords = []struct {
	level int
	words []string
}{
	{EducationPhD, []string{"phd", "doctor"}},
	{EducationMaster, []string{"master", "mba", "ms"}},
	{EducationBachelor, []string{"bachelor", "bs", "ba"}},
	{EducationAssociate, []string{"associate", "aa"}},
}

// EducationLevel maps a free-text education label to its rank (0 = high school, 4 = PhD).
// Dots and apostrophes are dropped first so "Ph.D." and "M.S." are found. Matching is loose on
// purpose: "MSCS" ranks as a master's, and so does "Information Systems". Unrecognized labels rank
// as high school.
func EducationLevel(education string) int {
	cleaned := strings.ToLower(education)
	cleaned = strings.NewReplacer(".", "", "'", "", "’", "").Replace(cleaned)

	for _, kw := range degreeKeywords {
		for _, w := range kw.words {
			if strings.Contains(cleaned, w) {
				return kw.level
			}
		}
	}
	return EducationHighSchool
}

// EducationLevelName returns the label for a rank, clamping out-of-range values.
func EducationLevelName(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(educationLevelNames) {
		level = len(educationLevelNames) - 1
	}
	return educationLevelNames[level]
}

// MeetsEducationRequirement reports whether the talent's education satisfies the job's minimum.
// No requirement is always met; a requirement with no talent education never is.
func MeetsEducationRequirement(talentEducation, requiredEducation *string) bool {
	if isBlank(requiredEducation) {
		return true
	}
	if isBlank(talentEducation) {
		return false
	}
	return EducationLevel(*talentEducation) >= EducationLevel(*requiredEducation)
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
