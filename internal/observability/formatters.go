// Package observability provides logging and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/o1-match/internal/matching"
	"github.com/jonathan/o1-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTalentProfile outputs the talent profile being matched.
func (p *Printer) PrintTalentProfile(talent *types.TalentMatchProfile) {
	if talent == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:        %s\n", talent.ID))
	sb.WriteString(fmt.Sprintf("O-1 score: %d\n", talent.O1Score))
	if talent.EducationLevel != nil {
		sb.WriteString(fmt.Sprintf("Education: %s (%s)\n", *talent.EducationLevel,
			matching.EducationLevelName(matching.EducationLevel(*talent.EducationLevel))))
	}
	if talent.YearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Years:     %.1f\n", *talent.YearsExperience))
	}
	if len(talent.CriteriaMet) > 0 {
		sb.WriteString(fmt.Sprintf("Criteria:  %s\n", joinCriteria(talent.CriteriaMet)))
		sb.WriteString(fmt.Sprintf("Coverage:  %s O-1 criteria\n", criteriaCoverage(talent.CriteriaMet)))
	}
	if len(talent.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:    %s\n", listPreview(talent.Skills)))
	}

	p.printBox("TALENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobProfile outputs the requirements of the job being matched.
func (p *Printer) PrintJobProfile(job *types.JobMatchProfile) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID: %s\n", job.ID))
	if !job.HasRequirements() {
		sb.WriteString("No stated requirements\n")
	}
	if job.MinScore > 0 {
		sb.WriteString(fmt.Sprintf("Minimum O-1 score: %d\n", job.MinScore))
	}
	if job.RequiredEducation != nil {
		sb.WriteString(fmt.Sprintf("Education: %s\n", *job.RequiredEducation))
	}
	if job.MinExperience != nil && *job.MinExperience > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", *job.MinExperience))
	}
	if len(job.PreferredCriteria) > 0 {
		sb.WriteString(fmt.Sprintf("Preferred criteria: %s\n", joinCriteria(job.PreferredCriteria)))
	}
	if len(job.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Required skills: %s\n", listPreview(job.RequiredSkills)))
	}
	if len(job.PreferredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Nice-to-haves: %s\n", listPreview(job.PreferredSkills)))
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score, category and per-factor breakdown of one match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	b := result.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d (%s)\n", result.OverallScore, result.Category))
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	score := b.ScoreRequirement
	if score.Required > 0 {
		sb.WriteString(fmt.Sprintf("%s O-1 score %d / %d  %.1f pts\n", mark(score.Met), score.Has, score.Required, score.Points))
	} else {
		sb.WriteString(fmt.Sprintf("%s O-1 score (no minimum)  %.1f pts\n", mark(score.Met), score.Points))
	}

	for _, c := range b.CriteriaMatch {
		label := string(c.Criterion)
		if !c.Required {
			label += " (extra)"
		}
		sb.WriteString(fmt.Sprintf("%s %s  %.1f pts\n", mark(c.Has), label, c.Points))
	}

	count := min(len(b.SkillsMatch), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := b.SkillsMatch[i]
		kind := "preferred"
		if s.Required {
			kind = "required"
		}
		sb.WriteString(fmt.Sprintf("%s %s [%s]  %.1f pts\n", mark(s.Has), s.Skill, kind, s.Points))
	}
	if len(b.SkillsMatch) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more skills\n", len(b.SkillsMatch)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("%s education  %.0f pts\n", mark(b.EducationMatch.Met), b.EducationMatch.Points))
	sb.WriteString(fmt.Sprintf("%s experience  %.0f pts", mark(b.ExperienceMatch.Met), b.ExperienceMatch.Points))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintJobMatches outputs the top ranked jobs for a talent.
func (p *Printer) PrintJobMatches(talentID string, matches []types.JobMatch) {
	entries := make([]rankedEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, rankedEntry{id: m.Job.ID, result: m.Result})
	}
	p.printRanked(fmt.Sprintf("TOP JOBS FOR %s", talentID), entries)
}

// PrintTalentMatches outputs the top ranked talents for a job.
func (p *Printer) PrintTalentMatches(jobID string, matches []types.TalentMatch) {
	entries := make([]rankedEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, rankedEntry{id: m.Talent.ID, result: m.Result})
	}
	p.printRanked(fmt.Sprintf("TOP TALENTS FOR %s", jobID), entries)
}

type rankedEntry struct {
	id     string
	result types.MatchResult
}

func (p *Printer) printRanked(title string, entries []rankedEntry) {
	if len(entries) == 0 {
		p.printBox(title, "No matches")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, e.id))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", e.result.OverallScore, e.result.Category))
		if missing := e.result.Breakdown.MissingRequiredSkills(); len(missing) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", listPreview(missing)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(entries)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// joinCriteria lists criteria, marking labels outside the eight O-1 criteria with "?".
func joinCriteria(criteria []types.Criterion) string {
	labels := make([]string, 0, len(criteria))
	for _, c := range criteria {
		label := string(c)
		if !c.IsKnown() {
			label += "?"
		}
		labels = append(labels, label)
	}
	return listPreview(labels)
}

func criteriaCoverage(criteria []types.Criterion) string {
	held := make(map[types.Criterion]bool, len(criteria))
	for _, c := range criteria {
		if c.IsKnown() {
			held[c] = true
		}
	}
	return fmt.Sprintf("%d/%d", len(held), len(types.AllCriteria()))
}

// listPreview joins items, truncating to fit a box line
func listPreview(items []string) string {
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}
