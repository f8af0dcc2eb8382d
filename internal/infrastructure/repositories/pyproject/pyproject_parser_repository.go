package pyproject

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
	"github.com/rios0rios0/oneup/internal/infrastructure/repositories/requirements"
)

const (
	pythonEntry    = "python"
	anyVersion     = "*"
	poetryDepsPath = "tool.poetry.dependencies"
	poetryDevPath  = "tool.poetry.dev-dependencies"
)

// PyprojectParserRepository implements repositories.ManifestParserRepository for pyproject.toml.
// It reads PEP 621 dependency arrays and Poetry dependency tables.
type PyprojectParserRepository struct{}

// NewPyprojectParserRepository creates a new pyproject.toml parser.
func NewPyprojectParserRepository() repositories.ManifestParserRepository {
	return &PyprojectParserRepository{}
}

func (p *PyprojectParserRepository) Format() entities.ManifestFormat {
	return entities.FormatProjectConfig
}

// Parse decodes the TOML document. Invalid TOML fails the whole file.
func (p *PyprojectParserRepository) Parse(
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

	result, err := ParseContent(data)
	if err != nil {
		return entities.ParseResult{}, &entities.ParseError{Path: source.Path, Err: err}
	}
	logger.Debugf(
		"[pyproject] %s: %d dependencies, %d skipped entries",
		source.Path, len(result.Dependencies), len(result.Warnings),
	)
	return result, nil
}

// ParseContent parses the bytes of a pyproject.toml document.
func ParseContent(data []byte) (entities.ParseResult, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return entities.ParseResult{}, fmt.Errorf("invalid TOML: %w", err)
	}

	lines := keyLines(string(data))
	result := entities.ParseResult{}

	if project, ok := doc["project"].(map[string]any); ok {
		parseRequirementArray(&result, "project.dependencies", project["dependencies"])
		if optional, isTable := project["optional-dependencies"].(map[string]any); isTable {
			for _, extra := range sortedKeys(optional) {
				parseRequirementArray(&result, "project.optional-dependencies."+extra, optional[extra])
			}
		}
	}

	poetry := nestedTable(doc, "tool", "poetry")
	if poetry == nil {
		return result, nil
	}
	parsePoetryTable(&result, lines, poetryDepsPath, poetry["dependencies"])
	parsePoetryTable(&result, lines, poetryDevPath, poetry["dev-dependencies"])
	if groups, ok := poetry["group"].(map[string]any); ok {
		for _, group := range sortedKeys(groups) {
			table := nestedTable(groups, group)
			if table == nil {
				continue
			}
			parsePoetryTable(&result, lines, "tool.poetry.group."+group+".dependencies", table["dependencies"])
		}
	}
	return result, nil
}

// parseRequirementArray handles PEP 621 arrays of requirement strings.
func parseRequirementArray(result *entities.ParseResult, section string, value any) {
	if value == nil {
		return
	}
	items, ok := value.([]any)
	if !ok {
		result.Warnings = append(result.Warnings, entities.MalformedEntryWarning{
			Entry:  section,
			Reason: "expected an array of requirement strings",
		})
		return
	}

	for _, item := range items {
		text, isString := item.(string)
		if !isString {
			result.Warnings = append(result.Warnings, entities.MalformedEntryWarning{
				Entry:  fmt.Sprintf("%s: %v", section, item),
				Reason: "expected a requirement string",
			})
			continue
		}

		dep, err := requirements.ParseRequirement(text)
		if errors.Is(err, requirements.ErrDirectReference) {
			logger.Debugf("[pyproject] %s: skipping direct reference %q", section, text)
			continue
		}
		if err != nil {
			result.Warnings = append(result.Warnings, entities.MalformedEntryWarning{
				Entry:  text,
				Reason: err.Error(),
			})
			continue
		}
		result.Dependencies = append(result.Dependencies, dep)
	}
}

// parsePoetryTable handles Poetry tables mapping names to a version string or an inline table.
func parsePoetryTable(result *entities.ParseResult, lines map[string]int, section string, value any) {
	table, ok := value.(map[string]any)
	if !ok {
		return
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	// file order when the key was found on its own line, alphabetical otherwise
	sort.SliceStable(names, func(i, j int) bool {
		li, lj := lineOf(lines, section, names[i]), lineOf(lines, section, names[j])
		if li != lj {
			if li == 0 || lj == 0 {
				return lj == 0
			}
			return li < lj
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if entities.NormalizeName(name) == pythonEntry {
			continue
		}
		line := lineOf(lines, section, name)
		dep, reason, skip := poetryDependency(name, table[name])
		if skip {
			logger.Debugf("[pyproject] %s: skipping unversioned dependency %q", section, name)
			continue
		}
		if reason != "" {
			result.Warnings = append(result.Warnings, entities.MalformedEntryWarning{
				Line:   line,
				Entry:  name,
				Reason: reason,
			})
			continue
		}
		dep.Line = line
		result.Dependencies = append(result.Dependencies, dep)
	}
}

// poetryDependency converts one Poetry entry. A non-empty reason means the entry is malformed;
// skip means it is a git, path or url source with no version.
func poetryDependency(name string, value any) (entities.Dependency, string, bool) {
	switch v := value.(type) {
	case string:
		constraint, reason := poetryConstraint(v)
		if reason != "" {
			return entities.Dependency{}, reason, false
		}
		return entities.NewDependency(name, constraint, 0), "", false

	case map[string]any:
		version, hasVersion := v["version"]
		if !hasVersion {
			for _, key := range []string{"git", "path", "url"} {
				if _, ok := v[key]; ok {
					return entities.Dependency{}, "", true
				}
			}
			return entities.NewDependency(name, "", 0), "", false
		}
		text, isString := version.(string)
		if !isString {
			return entities.Dependency{}, "version must be a string", false
		}
		constraint, reason := poetryConstraint(text)
		if reason != "" {
			return entities.Dependency{}, reason, false
		}
		dep := entities.NewDependency(name, constraint, 0)
		dep.Extras = stringList(v["extras"])
		if markers, ok := v["markers"].(string); ok {
			dep.Marker = markers
		}
		return dep, "", false

	default:
		return entities.Dependency{}, fmt.Sprintf("unsupported value of type %T", value), false
	}
}

func poetryConstraint(raw string) (string, string) {
	constraint := strings.TrimSpace(raw)
	if constraint == "" || constraint == anyVersion {
		return "", ""
	}
	if _, err := entities.ParseConstraint(constraint); err != nil {
		return "", err.Error()
	}
	return constraint, ""
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, entities.NormalizeName(s))
		}
	}
	return out
}

func nestedTable(doc map[string]any, keys ...string) map[string]any {
	current := doc
	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func sortedKeys(table map[string]any) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
