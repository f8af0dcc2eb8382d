package entities

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// versionPattern accepts semantic versions and the common PEP 440 spellings of release and
// pre-release versions. Post, dev and epoch versions are left to the lexicographic fallback.
var versionPattern = regexp.MustCompile(
	`(?i)^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?` + // release segments
		`(?:([-_.]?)(a|alpha|b|beta|c|rc|pre|preview)[-_.]?(\d*))?` + // PEP 440 pre-release
		`(?:-([0-9A-Za-z.-]+))?` + // semver pre-release
		`(?:\+([0-9A-Za-z.-]+))?$`, // build metadata or local version
)

const (
	groupSeparator  = 4
	groupLabel      = 5
	groupNumber     = 6
	groupPreRelease = 7
	groupBuild      = 8
)

// CanonicalVersion converts a version string into the "vMAJOR.MINOR.PATCH[-PRE][+BUILD]" form
// understood by golang.org/x/mod/semver. The second return value is false when the input is
// not a semantic version.
func CanonicalVersion(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	loc := versionPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}
	group := func(n int) string {
		if loc[2*n] < 0 {
			return ""
		}
		return text[loc[2*n]:loc[2*n+1]]
	}

	release := make([]string, 0, 3)
	for n := 1; n <= 3; n++ {
		segment := group(n)
		if segment == "" {
			segment = "0"
		}
		value, err := strconv.Atoi(segment)
		if err != nil {
			return "", false
		}
		release = append(release, strconv.Itoa(value))
	}

	var sb strings.Builder
	sb.WriteByte('v')
	sb.WriteString(strings.Join(release, "."))

	label, number := group(groupLabel), group(groupNumber)
	switch {
	case label != "" && (group(groupSeparator) != "-" || number != ""):
		// PEP 440 spelling such as "1.0rc1", "1.0.0-RC1" or "2.0b"
		if number == "" {
			number = "0"
		}
		sb.WriteByte('-')
		sb.WriteString(preReleaseLabel(label))
		sb.WriteByte('.')
		sb.WriteString(number)
	case label != "":
		// SemVer identifier that happens to start with a PEP 440 label, e.g. "1.0.0-alpha"
		end := len(text)
		if loc[2*groupBuild] >= 0 {
			end = loc[2*groupBuild] - 1
		}
		sb.WriteByte('-')
		sb.WriteString(text[loc[2*groupLabel]:end])
	case group(groupPreRelease) != "":
		sb.WriteByte('-')
		sb.WriteString(group(groupPreRelease))
	}

	if build := group(groupBuild); build != "" {
		sb.WriteByte('+')
		sb.WriteString(build)
	}

	canonical := sb.String()
	if !semver.IsValid(canonical) {
		return "", false
	}
	return canonical, true
}

// CompareVersions returns -1, 0 or +1 ordering a against b. When either side is not a semantic
// version the strings are compared lexicographically and the second result is true.
func CompareVersions(a, b string) (int, bool) {
	ca, okA := CanonicalVersion(a)
	cb, okB := CanonicalVersion(b)
	if okA && okB {
		return semver.Compare(ca, cb), false
	}
	return strings.Compare(strings.TrimSpace(a), strings.TrimSpace(b)), true
}

// AnalyzeVersionDiff determines the kind of jump from current to latest.
// It returns UpdateNone when either side is not a semantic version or latest is not newer.
func AnalyzeVersionDiff(current, latest string) UpdateType {
	cur, okCur := CanonicalVersion(current)
	next, okNext := CanonicalVersion(latest)
	if !okCur || !okNext || semver.Compare(next, cur) <= 0 {
		return UpdateNone
	}

	if semver.Major(cur) != semver.Major(next) {
		return UpdateMajor
	}
	if semver.MajorMinor(cur) != semver.MajorMinor(next) {
		return UpdateMinor
	}
	return UpdatePatch
}

// releaseSegments returns the numeric release segments of a version as written, so that
// "1.4" yields [1 4] and "1.4.2" yields [1 4 2].
func releaseSegments(raw string) ([]int, bool) {
	matches := versionPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return nil, false
	}
	segments := make([]int, 0, 3)
	for _, segment := range matches[1:4] {
		if segment == "" {
			break
		}
		n, err := strconv.Atoi(segment)
		if err != nil {
			return nil, false
		}
		segments = append(segments, n)
	}
	return segments, true
}

func preReleaseLabel(label string) string {
	switch strings.ToLower(label) {
	case "a", "alpha":
		return "alpha"
	case "b", "beta":
		return "beta"
	default:
		return "rc"
	}
}
