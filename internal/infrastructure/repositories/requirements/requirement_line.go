package requirements

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

var (
	// requirementPattern splits a declaration into name, optional extras and the remainder.
	requirementPattern = regexp.MustCompile(
		`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*(.*)$`,
	)

	// specifierPattern is one PEP 440 version specifier. Poetry-only operators are not allowed here.
	specifierPattern = regexp.MustCompile(`^(===|==|!=|~=|<=|>=|<|>)\s*[0-9A-Za-z]\S*$`)

	extraPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
)

// ErrDirectReference is returned for "name @ url" declarations, which carry no version to compare.
var ErrDirectReference = errors.New("direct reference")

// ParseRequirement parses a single PEP 508 declaration such as
// "requests[security] >= 2.20.0, < 3 ; python_version >= '3.8'".
// Comments and pip options must already be stripped.
func ParseRequirement(text string) (entities.Dependency, error) {
	matches := requirementPattern.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return entities.Dependency{}, errors.New("invalid package name")
	}

	name, rawExtras, rest := matches[1], matches[2], strings.TrimSpace(matches[3])
	if strings.HasPrefix(rest, "@") {
		return entities.Dependency{}, ErrDirectReference
	}

	extras, err := parseExtras(rawExtras)
	if err != nil {
		return entities.Dependency{}, err
	}

	spec, marker, _ := strings.Cut(rest, ";")
	constraint, err := parseSpecifiers(spec)
	if err != nil {
		return entities.Dependency{}, err
	}

	dep := entities.NewDependency(name, constraint, 0)
	dep.Extras = extras
	dep.Marker = strings.TrimSpace(marker)
	return dep, nil
}

func parseExtras(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var extras []string
	for _, part := range strings.Split(raw, ",") {
		extra := strings.TrimSpace(part)
		if !extraPattern.MatchString(extra) {
			return nil, fmt.Errorf("invalid extra %q", extra)
		}
		extras = append(extras, entities.NormalizeName(extra))
	}
	return extras, nil
}

// parseSpecifiers validates a comma-separated specifier list and returns it without whitespace.
func parseSpecifiers(raw string) (string, error) {
	spec := strings.TrimSpace(raw)
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		spec = strings.TrimSpace(spec[1 : len(spec)-1])
	}
	if spec == "" {
		return "", nil
	}

	for _, part := range strings.Split(spec, ",") {
		if !specifierPattern.MatchString(strings.TrimSpace(part)) {
			return "", fmt.Errorf("invalid version specifier %q", strings.TrimSpace(part))
		}
	}

	compact := strings.Join(strings.Fields(spec), "")
	if _, err := entities.ParseConstraint(compact); err != nil {
		return "", err
	}
	return compact, nil
}
