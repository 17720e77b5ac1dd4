package compare

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#2563EB")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	passStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	errorStyle   = lipgloss.NewStyle().Foreground(danger)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// Render formats a verdict for the terminal: a header box, findings grouped by
// task and the summary counters.
func Render(v *Verdict) string {
	var b strings.Builder

	status := passStyle.Render(v.Message())
	if v.Failed {
		status = failStyle.Render(v.Message())
	}
	if n := len(v.Failures()); n > 0 {
		status += "  " + errorStyle.Render(fmt.Sprintf("%d failing", n))
	}
	header := titleStyle.Render("Template verification") + "  " + status + "\n" +
		dimStyle.Render(fmt.Sprintf("run %s  %s", v.RunID, v.Duration().Round(time.Millisecond)))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	var group string
	for _, f := range v.Findings {
		if key := f.Tier + "/" + f.Kind; key != group {
			group = key
			b.WriteString("\n  " + sectionStyle.Render(fmt.Sprintf("%s %ss", labelFor(f.Tier), f.Kind)) + "\n")
		}
		renderFinding(&b, f)
	}

	s := v.Summary
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  %d tasks  %d compared  %d identical  %d mismatched  %d missing online  %d extra online  %d parse errors  %d missing roots",
		s.Tasks, s.Compared, s.Identical, s.Mismatched, s.MissingOnline, s.ExtraOnline, s.ParseErrors, s.MissingRoots,
	)))
	b.WriteString("\n")

	return b.String()
}

func renderFinding(b *strings.Builder, f Finding) {
	marker := errorStyle.Render("✗")
	if !f.Failure {
		marker = warnStyle.Render("!")
	}
	b.WriteString(fmt.Sprintf("    %s %s\n", marker, f.Message))

	if f.Error != "" {
		b.WriteString("        " + dimStyle.Render(f.Error) + "\n")
	}
	for _, c := range f.Changes {
		b.WriteString("        " + dimStyle.Render(c.String()) + "\n")
	}
}
