// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/types"
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
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintCandidate outputs the normalized skills a run scores against.
func (p *Printer) PrintCandidate(skills []string) {
	content := "(no skills)"
	if len(skills) > 0 {
		content = fmt.Sprintf("%d skill(s): %s", len(skills), strings.Join(skills, ", "))
	}
	p.printBox("CANDIDATE SKILLS", content)
}

// PrintRecommendations outputs the top recommendations with the reasons behind each score.
func (p *Printer) PrintRecommendations(skills []string, recs []ranking.Scored[types.JobPosting]) {
	if len(recs) == 0 {
		p.printBox("RECOMMENDED JOBS", "No matching jobs")
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := recs[i].Item
		b := ranking.Explain(skills, job)

		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.1f (skills %.1f + keywords %.1f)\n",
			recs[i].Score, b.RequirementOverlap, b.KeywordBonus))
		sb.WriteString(fmt.Sprintf("    %s\n", b.Notes))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterSummary outputs how many of the input items a filter kept.
func (p *Printer) PrintFilterSummary(kind string, criteria types.FilterCriteria, kept, total int) {
	var sb strings.Builder
	keyword := criteria.Keyword
	if keyword == "" {
		keyword = "(any)"
	}
	sb.WriteString(fmt.Sprintf("Keyword: %s\n", keyword))
	if len(criteria.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", strings.Join(criteria.Skills, ", ")))
	} else {
		sb.WriteString("Skills:  (any)\n")
	}
	sb.WriteString(fmt.Sprintf("\nKept %d of %d %s", kept, total, kind))

	p.printBox("FILTERED "+strings.ToUpper(kind), sb.String())
}

// PrintAnalytics outputs board totals and the busiest jobs.
func (p *Printer) PrintAnalytics(a types.Analytics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Students:      %d\n", a.Students))
	sb.WriteString(fmt.Sprintf("Recruiters:    %d\n", a.Recruiters))
	sb.WriteString(fmt.Sprintf("Jobs:          %d approved, %d pending\n", a.JobsApproved, a.JobsPending))
	sb.WriteString(fmt.Sprintf("Applications:  %d (%d shortlisted)\n", a.Applications, a.Shortlisted))

	if len(a.ApplicationsPerJob) > 0 {
		sb.WriteString("\nApplications per job:\n")
		for _, bar := range a.ApplicationsPerJob {
			sb.WriteString(fmt.Sprintf("  %-30s %s %d\n", truncate(bar.Label, 30), strings.Repeat("■", min(bar.Count, 15)), bar.Count))
		}
	}

	p.printBox("BOARD ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}
