// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/radebe49/studywbuddy/internal/llm"
	"github.com/radebe49/studywbuddy/internal/taxonomy"
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an exam analysis.
func (p *Printer) PrintAnalysis(analysis *llm.ExamAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	title := analysis.ExamTitle
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("Exam:      %s\n", title))
	sb.WriteString(fmt.Sprintf("Questions: %d\n", len(analysis.Questions)))
	if analysis.TotalMarks > 0 {
		sb.WriteString(fmt.Sprintf("Marks:     %d\n", analysis.TotalMarks))
	}

	if len(analysis.CriticalTopics) > 0 {
		sb.WriteString("\nCritical topics:\n")
		count := min(len(analysis.CriticalTopics), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.CriticalTopics[i]))
		}
		if len(analysis.CriticalTopics) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.CriticalTopics)-maxItemsToShow))
		}
	}

	p.printBox("EXAM ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGrouping outputs the per-bucket counts of a grouped question set.
func PrintGrouping[T taxonomy.Classifiable](p *Printer, g *taxonomy.Grouping[T]) {
	if g == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("BQ:                   %d\n", len(g.BQ)))
	sb.WriteString(fmt.Sprintf("HQ Technik:           %d\n", len(g.HQ.Technik)))
	sb.WriteString(fmt.Sprintf("HQ Organisation:      %d\n", len(g.HQ.Organisation)))
	sb.WriteString(fmt.Sprintf("HQ Führung/Personal:  %d\n", len(g.HQ.Fuehrung)))
	sb.WriteString(fmt.Sprintf("Sonstige:             %d\n", len(g.Sonstige)))
	sb.WriteString(fmt.Sprintf("Total:                %d", g.Count()))

	p.printBox("QUESTION GROUPS", sb.String())
}
