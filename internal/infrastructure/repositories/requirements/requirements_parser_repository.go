package requirements

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// optionPattern finds the first whitespace-preceded long option on a declaration line.
var optionPattern = regexp.MustCompile(`\s--[A-Za-z]`)

// RequirementsParserRepository implements repositories.ManifestParserRepository for pip
// requirement files.
type RequirementsParserRepository struct{}

// NewRequirementsParserRepository creates a new requirement-file parser.
func NewRequirementsParserRepository() repositories.ManifestParserRepository {
	return &RequirementsParserRepository{}
}

func (p *RequirementsParserRepository) Format() entities.ManifestFormat {
	return entities.FormatRequirementsList
}

// Parse reads a requirement file. Malformed lines are skipped with a warning; a file that is
// not valid UTF-8 text fails as a whole.
func (p *RequirementsParserRepository) Parse(
	ctx context.Context,
	source entities.ManifestSource,
) (entities.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.ParseResult{}, err
	}

	data, err := os.ReadFile(source.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entities.ParseResult{}, &entities.NotFoundError{Path: source.Path}
		}
		return entities.ParseResult{}, &entities.ParseError{Path: source.Path, Err: err}
	}
	if !utf8.Valid(data) {
		return entities.ParseResult{}, &entities.ParseError{
			Path: source.Path,
			Err:  errors.New("file is not valid UTF-8 text"),
		}
	}

	result := ParseContent(string(data))
	logger.Debugf(
		"[requirements] %s: %d dependencies, %d skipped entries",
		source.Path, len(result.Dependencies), len(result.Warnings),
	)
	return result, nil
}

// ParseContent parses the text of a requirement file.
func ParseContent(content string) entities.ParseResult {
	result := entities.ParseResult{}
	for _, line := range logicalLines(content) {
		text := stripComment(line.text)
		if text == "" {
			continue
		}

		if isPipOption(text) {
			logger.Debugf("[requirements] line %d: skipping pip option %q", line.number, text)
			continue
		}
		if isURLOrPath(text) {
			logger.Debugf("[requirements] line %d: skipping unversioned reference %q", line.number, text)
			continue
		}

		text, options := cutOptions(text)
		if options != "" {
			logger.Debugf("[requirements] line %d: ignoring per-requirement options %q", line.number, options)
		}

		dep, err := ParseRequirement(text)
		if errors.Is(err, ErrDirectReference) {
			logger.Debugf("[requirements] line %d: skipping direct reference %q", line.number, text)
			continue
		}
		if err != nil {
			result.Warnings = append(result.Warnings, entities.MalformedEntryWarning{
				Line:   line.number,
				Entry:  text,
				Reason: err.Error(),
			})
			continue
		}

		dep.Line = line.number
		result.Dependencies = append(result.Dependencies, dep)
	}
	return result
}

type logicalLine struct {
	number int
	text   string
}

// logicalLines splits content into lines, joining backslash continuations. The line number is
// that of the first physical line.
func logicalLines(content string) []logicalLine {
	physical := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var (
		lines   []logicalLine
		builder strings.Builder
		start   int
	)
	for i, raw := range physical {
		if builder.Len() == 0 {
			start = i + 1
		}
		if strings.HasSuffix(raw, `\`) && !strings.HasPrefix(strings.TrimSpace(raw), "#") {
			builder.WriteString(strings.TrimSuffix(raw, `\`))
			continue
		}
		builder.WriteString(raw)
		lines = append(lines, logicalLine{number: start, text: builder.String()})
		builder.Reset()
	}
	if builder.Len() > 0 {
		lines = append(lines, logicalLine{number: start, text: builder.String()})
	}
	return lines
}

// stripComment removes full-line comments and trailing " #" comments.
func stripComment(line string) string {
	text := strings.TrimSpace(line)
	if strings.HasPrefix(text, "#") {
		return ""
	}
	if idx := strings.Index(text, " #"); idx >= 0 {
		text = text[:idx]
	}
	if idx := strings.Index(text, "\t#"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// cutOptions splits a declaration from trailing per-requirement options such as
// "--hash=sha256:..." or "--config-settings=...".
func cutOptions(text string) (string, string) {
	loc := optionPattern.FindStringIndex(text)
	if loc == nil {
		return text, ""
	}
	return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[0]:])
}

func isPipOption(text string) bool {
	return strings.HasPrefix(text, "-")
}

func isURLOrPath(text string) bool {
	return strings.Contains(text, "://") ||
		strings.HasPrefix(text, ".") ||
		strings.HasPrefix(text, "/") ||
		strings.HasPrefix(text, "~")
}
