// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaswanthreddy/portfolio/internal/schemas"
	"github.com/yaswanthreddy/portfolio/internal/types"
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

// PrintPortfolio outputs the profile header and a per-kind record count.
func (p *Printer) PrintPortfolio(portfolio *types.Portfolio) {
	if portfolio == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", portfolio.Profile.Name))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", portfolio.Profile.Headline))
	sb.WriteString("\n")

	for _, kind := range types.Kinds() {
		sb.WriteString(fmt.Sprintf("%-16s %d\n", string(kind)+"s:", portfolio.Count(kind)))
	}
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "skills:", len(portfolio.Skills)))
	sb.WriteString(fmt.Sprintf("%-16s %d", "timeline:", len(portfolio.Timeline)))

	p.printBox("PORTFOLIO CONTENT", sb.String())
}

// PrintSkills outputs the radar axes with a bar per level.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	for i, skill := range skills {
		level := int(skill.Level + 0.5)
		level = max(0, min(level, 10))
		sb.WriteString(fmt.Sprintf("%-20s %-10s %4.1f", truncate(skill.Name, 20), strings.Repeat("█", level), skill.Level))
		if i < len(skills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILLS", sb.String())
}

// PrintTimeline outputs the first few timeline entries.
func (p *Printer) PrintTimeline(entries []types.TimelineEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("%s → %s  %s", e.Start, e.End, e.Task))
		if e.Role != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", e.Role))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("TIMELINE", sb.String())
}

// PrintProjects outputs project titles with their metrics.
func (p *Printer) PrintProjects(projects []types.Project) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := projects[i]
		sb.WriteString(fmt.Sprintf("• %s\n", project.Title))
		if len(project.Technologies) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(project.Technologies, ", ")))
		}
		for _, m := range project.Metrics {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", m.Name, m.Value))
		}
	}

	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more projects\n", len(projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs schema validation failures, or a success line
// when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ CONTENT IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(verr.Errors)))

	for i, fe := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s", fe.Message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}
