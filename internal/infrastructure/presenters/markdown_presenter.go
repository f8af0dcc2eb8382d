package presenters

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

// MarkdownPresenter prints a GitHub-flavoured table, suitable for pasting into an issue.
type MarkdownPresenter struct{}

func (p *MarkdownPresenter) Render(w io.Writer, report *entities.Report) error {
	var sb strings.Builder
	sb.WriteString("| Package | Declared | Latest | Status |\n")
	sb.WriteString("|---------|----------|--------|--------|\n")

	for _, line := range report.Lines {
		name := line.Name
		if line.HomePage != "" {
			name = fmt.Sprintf("[%s](%s)", line.Name, line.HomePage)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			name,
			escapePipes(declaredOrDash(line)),
			latestOrNA(line),
			statusLabel(line))
	}

	fmt.Fprintf(&sb, "\n**Total:** %d dependencies, %d outdated, %d unknown\n",
		len(report.Lines), report.Outdated(), report.Unknown())

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&sb, "\n**Skipped %d malformed entries:**\n\n", len(report.Warnings))
		for _, warning := range report.Warnings {
			if warning.Line > 0 {
				fmt.Fprintf(&sb, "- line %d: `%s` (%s)\n", warning.Line, warning.Entry, warning.Reason)
				continue
			}
			fmt.Fprintf(&sb, "- `%s` (%s)\n", warning.Entry, warning.Reason)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapePipes keeps Poetry "||" constraints from splitting a cell.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
