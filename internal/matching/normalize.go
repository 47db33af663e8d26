// Package matching scores talent profiles against job requirements and ranks the results.
package matching

import (
	"strings"
)

// skillSynonyms maps a canonical skill to the aliases that should compare equal to it.
// Keys and aliases are compared after NormalizeSkill.
var skillSynonyms = map[string][]string{
	"javascript":                  {"js", "ecmascript", "es6", "es2015"},
	"typescript":                  {"ts"},
	"python":                      {"py", "python3"},
	"golang":                      {"go"},
	"kubernetes":                  {"k8s", "kube"},
	"postgresql":                  {"postgres", "psql", "pgsql"},
	"mongodb":                     {"mongo"},
	"react":                       {"reactjs", "react.js"},
	"vue":                         {"vuejs", "vue.js"},
	"angular":                     {"angularjs"},
	"nodejs":                      {"node", "node.js"},
	"aws":                         {"amazon web services"},
	"gcp":                         {"google cloud", "google cloud platform"},
	"azure":                       {"microsoft azure"},
	"machine learning":            {"ml"},
	"artificial intelligence":     {"ai"},
	"deep learning":               {"dl"},
	"natural language processing": {"nlp"},
	"computer vision":             {"cv"},
	"cplusplus":                   {"cpp"},
	"csharp":                      {"c sharp"},
	"dotnet":                      {"net core", "asp.net"},
	"ci/cd":                       {"continuous integration", "continuous delivery", "continuous deployment"},
	"docker":                      {"docker compose", "containers"},
	"terraform":                   {"tf", "hcl"},
	"sql":                         {"structured query language"},
	"nosql":                       {"mongodb", "dynamodb", "cassandra"},
	"graphql":                     {"gql"},
	"rest api":                    {"rest", "restful"},
	"scikit-learn":                {"sklearn"},
	"pytorch":                     {"torch"},
	"ruby on rails":               {"rails", "ror"},
	"objective-c":                 {"objc"},
	"ux design":                   {"ux", "user experience"},
	"ui design":                   {"ui", "user interface"},
}

// synonymGroups indexes every normalized term to the synonym groups it belongs to.
var synonymGroups = buildSynonymGroups(skillSynonyms)

func buildSynonymGroups(table map[string][]string) map[string][]int {
	groups := make(map[string][]int)
	id := 0
	for canonical, aliases := range table {
		for _, term := range append([]string{canonical}, aliases...) {
			normalized := NormalizeSkill(term)
			if normalized == "" {
				continue
			}
			groups[normalized] = append(groups[normalized], id)
		}
		id++
	}
	return groups
}

// NormalizeSkill lower-cases a skill label and strips every non-alphanumeric character.
func NormalizeSkill(skill string) string {
	var sb strings.Builder
	sb.Grow(len(skill))
	for _, r := range strings.ToLower(skill) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SkillsMatch reports whether two skill labels refer to the same skill.
// Labels match when their normalized forms are equal, when both belong to one
// synonym group, or when one normalized form contains the other.
func SkillsMatch(skillA, skillB string) bool {
	a := NormalizeSkill(skillA)
	b := NormalizeSkill(skillB)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if sameSynonymGroup(a, b) {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func sameSynonymGroup(a, b string) bool {
	groupsA, ok := synonymGroups[a]
	if !ok {
		return false
	}
	groupsB, ok := synonymGroups[b]
	if !ok {
		return false
	}
	for _, ga := range groupsA {
		for _, gb := range groupsB {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

// hasSkill reports whether any of the talent's skills matches the wanted skill.
func hasSkill(talentSkills []string, wanted string) bool {
	for _, s := range talentSkills {
		if SkillsMatch(wanted, s) {
			return true
		}
	}
	return false
}
