package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// Styles for the human-readable report. Lipgloss degrades to plain text
// when the output is not a terminal.
var (
	pathStyle = lipgloss.NewStyle().Faint(true)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// renderReport prints one issue per line, in traversal order.
func renderReport(w io.Writer, report *domain.Report) {
	for _, issue := range report.Issues {
		line := fmt.Sprintf("%s: %s %s [%s]",
			report.File,
			kindStyle.Render(string(issue.Kind)),
			pathStyle.Render(issue.Path),
			strings.Join(issue.Keys, ", "),
		)
		if issue.Detail != "" {
			line += " " + pathStyle.Render("("+issue.Detail+")")
		}
		fmt.Fprintln(w, line)
	}
}

// renderSummary prints the per-run pass/fail line.
func renderSummary(w io.Writer, files, maps, issues int) {
	if issues == 0 {
		fmt.Fprintln(w, passStyle.Render(fmt.Sprintf("OK: %d file(s), %d translation map(s), no issues", files, maps)))
		return
	}
	fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("FAIL: %d issue(s) across %d file(s), %d translation map(s)", issues, files, maps)))
}
