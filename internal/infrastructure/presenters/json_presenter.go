package presenters

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

type jsonLine struct {
	Name          string `json:"name"`
	Declared      string `json:"declared"`
	Latest        string `json:"latest"`
	Status        string `json:"status"`
	UpdateType    string `json:"update_type,omitempty"`
	Lexicographic bool   `json:"lexicographic"`
	HomePage      string `json:"home_page,omitempty"`
	PURL          string `json:"purl,omitempty"`
}

type jsonWarning struct {
	Line   int    `json:"line,omitempty"`
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

type jsonReport struct {
	Manifest     string        `json:"manifest"`
	Format       string        `json:"format"`
	Dependencies []jsonLine    `json:"dependencies"`
	Warnings     []jsonWarning `json:"warnings"`
}

// JSONPresenter prints the report as an indented JSON document.
type JSONPresenter struct{}

func (p *JSONPresenter) Render(w io.Writer, report *entities.Report) error {
	out := jsonReport{
		Manifest:     report.Source.Path,
		Format:       report.Source.Format.String(),
		Dependencies: make([]jsonLine, 0, len(report.Lines)),
		Warnings:     make([]jsonWarning, 0, len(report.Warnings)),
	}
	for _, line := range report.Lines {
		out.Dependencies = append(out.Dependencies, jsonLine{
			Name:          line.Name,
			Declared:      line.Constraint,
			Latest:        line.Latest,
			Status:        string(line.Status),
			UpdateType:    string(line.UpdateType),
			Lexicographic: line.Lexicographic,
			HomePage:      line.HomePage,
			PURL:          line.PURL,
		})
	}
	for _, warning := range report.Warnings {
		out.Warnings = append(out.Warnings, jsonWarning{
			Line:   warning.Line,
			Entry:  warning.Entry,
			Reason: warning.Reason,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
