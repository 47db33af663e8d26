// Package types provides type definitions for structured data used throughout the o1-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Criterion is one of the O-1 extraordinary-ability evidence categories.
type Criterion string

// The eight evidence criteria a talent can document.
const (
	CriterionAwards               Criterion = "awards"
	CriterionMembership           Criterion = "membership"
	CriterionPublishedMaterial    Criterion = "published_material"
	CriterionJudging              Criterion = "judging"
	CriterionOriginalContribution Criterion = "original_contribution"
	CriterionScholarlyArticles    Criterion = "scholarly_articles"
	CriterionCriticalEmployment   Criterion = "critical_employment"
	CriterionHighRemuneration     Criterion = "high_remuneration"
)

var allCriteria = []Criterion{
	CriterionAwards,
	CriterionMembership,
	CriterionPublishedMaterial,
	CriterionJudging,
	CriterionOriginalContribution,
	CriterionScholarlyArticles,
	CriterionCriticalEmployment,
	CriterionHighRemuneration,
}

// criterionAliases maps common free-text spellings to canonical criteria
var criterionAliases = map[string]Criterion{
	"award":                  CriterionAwards,
	"prizes":                 CriterionAwards,
	"memberships":            CriterionMembership,
	"press":                  CriterionPublishedMaterial,
	"media_coverage":         CriterionPublishedMaterial,
	"published_materials":    CriterionPublishedMaterial,
	"judge":                  CriterionJudging,
	"original_contributions": CriterionOriginalContribution,
	"contributions":          CriterionOriginalContribution,
	"scholarly_article":      CriterionScholarlyArticles,
	"authorship":             CriterionScholarlyArticles,
	"publications":           CriterionScholarlyArticles,
	"critical_role":          CriterionCriticalEmployment,
	"high_salary":            CriterionHighRemuneration,
	"remuneration":           CriterionHighRemuneration,
}

// AllCriteria returns the eight canonical criteria in a fixed order.
func AllCriteria() []Criterion {
	out := make([]Criterion, len(allCriteria))
	copy(out, allCriteria)
	return out
}

// ParseCriterion maps a free-text criterion label onto its canonical key.
// Unknown labels are returned in key form (lower-case, underscores) rather than rejected.
func ParseCriterion(s string) Criterion {
	key := criterionKey(s)
	if key == "" {
		return ""
	}
	for _, c := range allCriteria {
		if string(c) == key {
			return c
		}
	}
	if canonical, ok := criterionAliases[key]; ok {
		return canonical
	}
	return Criterion(key)
}

// IsKnown reports whether c is one of the eight canonical criteria.
func (c Criterion) IsKnown() bool {
	for _, known := range allCriteria {
		if c == known {
			return true
		}
	}
	return false
}

func criterionKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	})
	return strings.Join(fields, "_")
}
