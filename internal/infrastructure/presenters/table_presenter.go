package presenters

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

const maxHomePageWidth = 50

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	upToDateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	majorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	outdatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	unknownStyle  = lipgloss.NewStyle().Faint(true)
)

// TablePresenter prints aligned columns followed by a summary line.
type TablePresenter struct{}

func (p *TablePresenter) Render(w io.Writer, report *entities.Report) error {
	if len(report.Lines) == 0 {
		if _, err := fmt.Fprintf(w, "No dependencies to report in %s.\n", report.Source.Path); err != nil {
			return err
		}
		return renderWarnings(w, report)
	}

	nameW := len("Package")
	declaredW := len("Declared")
	latestW := len("Latest")
	statusW := len("Status")
	for _, line := range report.Lines {
		nameW = max(nameW, len(line.Name))
		declaredW = max(declaredW, len(declaredOrDash(line)))
		latestW = max(latestW, len(latestOrNA(line)))
		statusW = max(statusW, len(statusLabel(line)))
	}

	var sb strings.Builder
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s",
		nameW, "Package",
		declaredW, "Declared",
		latestW, "Latest",
		statusW, "Status",
		"Home page")
	sb.WriteString(headerStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", nameW+declaredW+latestW+statusW+len("Home page")+8))
	sb.WriteString("\n")

	for _, line := range report.Lines {
		// pad before styling so escape codes do not break the alignment
		status := fmt.Sprintf("%-*s", statusW, statusLabel(line))
		fmt.Fprintf(&sb, "%-*s  %-*s  %-*s  %s  %s\n",
			nameW, line.Name,
			declaredW, declaredOrDash(line),
			latestW, latestOrNA(line),
			styleFor(line).Render(status),
			truncate(line.HomePage, maxHomePageWidth))
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Total: %d dependencies, %d outdated, %d unknown\n",
		len(report.Lines), report.Outdated(), report.Unknown())

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	return renderWarnings(w, report)
}

func renderWarnings(w io.Writer, report *entities.Report) error {
	if len(report.Warnings) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nSkipped %d malformed entries:\n", len(report.Warnings))
	for _, warning := range report.Warnings {
		if warning.Line > 0 {
			fmt.Fprintf(&sb, "  line %d: %s (%s)\n", warning.Line, warning.Entry, warning.Reason)
			continue
		}
		fmt.Fprintf(&sb, "  %s (%s)\n", warning.Entry, warning.Reason)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func styleFor(line entities.ReportLine) lipgloss.Style {
	switch line.Status {
	case entities.StatusUpToDate:
		return upToDateStyle
	case entities.StatusOutdated:
		if line.UpdateType == entities.UpdateMajor {
			return majorStyle
		}
		return outdatedStyle
	default:
		return unknownStyle
	}
}

// truncate shortens s to maxWidth terminal cells, never splitting a character.
func truncate(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "...")
}
