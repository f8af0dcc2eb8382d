package entities

// ResolvedVersion is the latest version a package index reports for a dependency.
type ResolvedVersion struct {
	Name     string
	Latest   string
	HomePage string
	Found    bool // false when the index had no match or was unreachable
}

// Status classifies a dependency against its latest version.
type Status string

const (
	StatusUpToDate Status = "up-to-date"
	StatusOutdated Status = "outdated"
	StatusUnknown  Status = "unknown"
)

// UpdateType describes the size of the jump from a pinned version to the latest one.
type UpdateType string

const (
	UpdateNone  UpdateType = ""
	UpdateMajor UpdateType = "major"
	UpdateMinor UpdateType = "minor"
	UpdatePatch UpdateType = "patch"
)

// ReportLine is the comparison result for one dependency.
type ReportLine struct {
	Name          string
	Constraint    string
	Latest        string
	HomePage      string
	PURL          string
	Status        Status
	UpdateType    UpdateType
	Lexicographic bool // versions did not parse as semantic versions
}

// Report is the full output of a check run.
type Report struct {
	Source   ManifestSource
	Lines    []ReportLine
	Warnings []MalformedEntryWarning
}

// Outdated returns the number of outdated lines.
func (r *Report) Outdated() int {
	return r.count(StatusOutdated)
}

// Unknown returns the number of lines whose latest version could not be fetched.
func (r *Report) Unknown() int {
	return r.count(StatusUnknown)
}

// OnlyOutdated returns a copy of the report restricted to outdated lines.
func (r *Report) OnlyOutdated() *Report {
	filtered := make([]ReportLine, 0, len(r.Lines))
	for _, line := range r.Lines {
		if line.Status == StatusOutdated {
			filtered = append(filtered, line)
		}
	}
	return &Report{Source: r.Source, Lines: filtered, Warnings: r.Warnings}
}

func (r *Report) count(status Status) int {
	total := 0
	for _, line := range r.Lines {
		if line.Status == status {
			total++
		}
	}
	return total
}
