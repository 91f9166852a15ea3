package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/lint"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

func styleFor(s config.Severity) lipgloss.Style {
	switch s {
	case config.SeverityError:
		return errorStyle
	case config.SeverityWarning:
		return warningStyle
	}
	return infoStyle
}

// Summary prints the findings and the written report paths to w.
func Summary(w io.Writer, r *lint.Report, written []string) {
	fmt.Fprintln(w, titleStyle.Render("Lint results for "+r.Project))
	for _, f := range r.Findings {
		line := fmt.Sprintf("%s [%s] %s", severityLabel(f.Severity), f.ID, f.Message)
		if f.Variant != "" {
			line += " (" + f.Variant + ")"
		}
		fmt.Fprintln(w, "  "+styleFor(f.Severity).Render(line))
	}
	fmt.Fprintf(w, "%s, %s, %s\n",
		errorStyle.Render(fmt.Sprintf("%d errors", r.Count(config.SeverityError))),
		warningStyle.Render(fmt.Sprintf("%d warnings", r.Count(config.SeverityWarning))),
		infoStyle.Render(fmt.Sprintf("%d informational", r.Count(config.SeverityInformational))),
	)
	for _, p := range written {
		fmt.Fprintln(w, infoStyle.Render("Wrote "+p))
	}
}
