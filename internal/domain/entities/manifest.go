package entities

// ManifestFormat identifies the syntax of a dependency manifest.
type ManifestFormat string

const (
	// FormatRequirementsList is a pip requirement file with one declaration per line.
	FormatRequirementsList ManifestFormat = "requirements"

	// FormatProjectConfig is a pyproject.toml file.
	FormatProjectConfig ManifestFormat = "pyproject"
)

// String returns the string representation of the format.
func (f ManifestFormat) String() string {
	return string(f)
}

// IsValid returns true if the format is a known format.
func (f ManifestFormat) IsValid() bool {
	switch f {
	case FormatRequirementsList, FormatProjectConfig:
		return true
	default:
		return false
	}
}

// ManifestSource is a located manifest file and its detected format.
type ManifestSource struct {
	Path   string
	Format ManifestFormat
}

// MalformedEntryWarning describes a manifest entry that was skipped.
type MalformedEntryWarning struct {
	Line   int    // Line number, 0 for structured entries
	Entry  string // Raw text or key of the entry
	Reason string
}

// ParseResult is the output of parsing a manifest.
type ParseResult struct {
	Dependencies []Dependency
	Warnings     []MalformedEntryWarning
}
