package entities

import (
	packageurl "github.com/package-url/packageurl-go"
)

// Classify compares a dependency's declared constraint against the resolved latest version.
//
// The rules are:
//   - unknown when the latest version could not be fetched
//   - up to date when nothing is pinned
//   - for exact pins, outdated only when latest is strictly newer
//   - for ranges, outdated when latest does not satisfy the range
func Classify(dep Dependency, resolved ResolvedVersion) ReportLine {
	line := ReportLine{
		Name:       dep.Name,
		Constraint: dep.Constraint,
		Latest:     resolved.Latest,
		HomePage:   resolved.HomePage,
		Status:     StatusUnknown,
	}

	if !resolved.Found || resolved.Latest == "" {
		line.Latest = ""
		return line
	}
	line.PURL = PackageURL(dep.Name, resolved.Latest)

	if !dep.IsPinned() {
		line.Status = StatusUpToDate
		return line
	}

	constraint, err := ParseConstraint(dep.Constraint)
	if err != nil {
		// parsers reject malformed constraints; keep the line visible rather than guessing
		return line
	}

	if pinned, ok := constraint.ExactVersion(); ok {
		cmp, lexicographic := CompareVersions(resolved.Latest, pinned)
		line.Lexicographic = lexicographic
		if cmp > 0 {
			line.Status = StatusOutdated
			line.UpdateType = AnalyzeVersionDiff(pinned, resolved.Latest)
			return line
		}
		line.Status = StatusUpToDate
		return line
	}

	satisfied, lexicographic := constraint.Satisfies(resolved.Latest)
	line.Lexicographic = lexicographic
	if satisfied {
		line.Status = StatusUpToDate
	} else {
		line.Status = StatusOutdated
	}
	return line
}

// PackageURL returns the package-url identifying a PyPI release, e.g. "pkg:pypi/requests@2.32.3".
func PackageURL(name, version string) string {
	purl := packageurl.PackageURL{
		Type:    packageurl.TypePyPi,
		Name:    NormalizeName(name),
		Version: version,
	}
	return purl.ToString()
}
