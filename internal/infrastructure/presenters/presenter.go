package presenters

import (
	"fmt"
	"io"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

const notAvailable = "N/A"

// Presenter renders a report in one output format.
type Presenter interface {
	Render(w io.Writer, report *entities.Report) error
}

// NewPresenter returns the presenter for format ("table", "json" or "markdown").
func NewPresenter(format string) (Presenter, error) {
	switch format {
	case "table", "":
		return &TablePresenter{}, nil
	case "json":
		return &JSONPresenter{}, nil
	case "markdown":
		return &MarkdownPresenter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func declaredOrDash(line entities.ReportLine) string {
	if line.Constraint == "" {
		return "-"
	}
	return line.Constraint
}

func latestOrNA(line entities.ReportLine) string {
	if line.Latest == "" {
		return notAvailable
	}
	return line.Latest
}

// statusLabel is the uncoloured status text shared by the table and markdown output.
func statusLabel(line entities.ReportLine) string {
	label := "unknown"
	switch line.Status {
	case entities.StatusUpToDate:
		label = "up to date"
	case entities.StatusOutdated:
		label = "outdated"
		if line.UpdateType != entities.UpdateNone {
			label = fmt.Sprintf("outdated (%s)", line.UpdateType)
		}
	}
	if line.Lexicographic {
		label += " (lexicographic)"
	}
	return label
}
