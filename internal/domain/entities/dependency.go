package entities

import (
	"regexp"
	"strings"
)

// nameSeparators matches the runs of separators that PEP 503 treats as equivalent.
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// Dependency represents a single dependency declared in a manifest.
type Dependency struct {
	Name       string   // Normalized package name
	Constraint string   // Declared version or range, empty when unpinned
	Extras     []string // Requested extras, e.g. "security" in requests[security]
	Marker     string   // Environment marker following ';'
	Line       int      // Line number in the manifest (0 when not line-oriented)
}

// NewDependency builds a Dependency with a normalized name.
func NewDependency(name, constraint string, line int) Dependency {
	return Dependency{
		Name:       NormalizeName(name),
		Constraint: strings.TrimSpace(constraint),
		Line:       line,
	}
}

// IsPinned returns true when the dependency declares any constraint.
func (d Dependency) IsPinned() bool {
	return d.Constraint != ""
}

// NormalizeName lower-cases a package name and collapses '-', '_' and '.' runs into '-'.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
