// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
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

// PrintScoreResult outputs a human-readable summary of one scored answer.
func (p *Printer) PrintScoreResult(result *types.ScoreResult, persona types.Persona) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Persona:    %s\n", persona))
	sb.WriteString(fmt.Sprintf("Overall:    %d/100\n", result.Overall))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString("\n")

	sb.WriteString("Dimensions:\n")
	dims := make([]string, 0, len(result.PerDimension))
	for dim := range result.PerDimension {
		dims = append(dims, string(dim))
	}
	sort.Strings(dims)
	for _, dim := range dims {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", dim, result.PerDimension[types.Dimension(dim)]))
	}

	if len(result.RedFlags) > 0 {
		sb.WriteString("\nRed Flags:\n")
		for _, flag := range result.RedFlags {
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%d)\n", flag.Name, flag.Penalty))
		}
	}
	if len(result.CappedBy) > 0 {
		sb.WriteString(fmt.Sprintf("\nCapped by: %s\n", strings.Join(result.CappedBy, ", ")))
	}

	p.printBox("ANSWER EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStorySet outputs the synthesized core stories with their coverage.
func (p *Printer) PrintStorySet(output *types.SynthesisOutput) {
	if output == nil || len(output.CoreStories) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Synthesized %d core stories:\n\n", len(output.CoreStories)))

	count := min(len(output.CoreStories), maxItemsToShow)
	for i := 0; i < count; i++ {
		story := output.CoreStories[i]
		title := story.Title
		if len(title) > 48 {
			title = title[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		if len(story.Coverage) > 0 {
			themes := strings.Join(story.Coverage, ", ")
			if len(themes) > 40 {
				themes = themes[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Themes:  %s\n", themes))
		}
		sb.WriteString(fmt.Sprintf("    Sources: %d answers\n", len(story.SourceAnswerIDs)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(output.CoreStories) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more stories", len(output.CoreStories)-maxItemsToShow))
	}

	p.printBox("CORE STORIES", sb.String())
}

// PrintCoverage outputs the theme-to-story coverage map, flagging gaps.
func (p *Printer) PrintCoverage(coverage types.CoverageMap) {
	if len(coverage) == 0 {
		return
	}

	themes := make([]string, 0, len(coverage))
	for theme := range coverage {
		themes = append(themes, theme)
	}
	sort.Strings(themes)

	var sb strings.Builder
	for _, theme := range themes {
		storyIDs := coverage[theme]
		if len(storyIDs) == 0 {
			sb.WriteString(fmt.Sprintf("⚠ %-20s no covering story\n", theme))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-20s %d stories\n", theme, len(storyIDs)))
	}

	p.printBox("THEME COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRationale outputs the selection rationale lines.
func (p *Printer) PrintRationale(rationale []string) {
	if len(rationale) == 0 {
		return
	}

	var sb strings.Builder
	for i, line := range rationale {
		if len(line) > 52 {
			line = line[:49] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", line))
		if i < len(rationale)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SELECTION RATIONALE", sb.String())
}
