package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clausePattern matches one comparator clause such as ">=1.2", "~=1.4.2", "==1.*" or "^0.3".
var clausePattern = regexp.MustCompile(`^(===|==|!=|~=|<=|>=|<|>|\^|~|=)?\s*([0-9A-Za-z][0-9A-Za-z.*+!_-]*)$`)

// numericStart matches a version that begins with a release number, optionally after "v".
var numericStart = regexp.MustCompile(`^[vV]?[0-9]`)

// operatorPattern matches a comparator written apart from its version.
var operatorPattern = regexp.MustCompile(`^(===|==|!=|~=|<=|>=|<|>|\^|~|=)$`)

var errEmptyConstraint = errors.New("empty constraint")

// Clause is a single comparison in a constraint expression.
type Clause struct {
	Op      string
	Version string
}

// Constraint is a parsed version constraint: a disjunction of comma-separated conjunctions.
// Requirement files only ever produce a single group; "||" comes from Poetry.
type Constraint struct {
	Raw    string
	Groups [][]Clause
}

// ParseConstraint parses a constraint expression such as ">=1.0,<2.0".
func ParseConstraint(expr string) (Constraint, error) {
	raw := strings.TrimSpace(expr)
	if raw == "" {
		return Constraint{}, errEmptyConstraint
	}

	constraint := Constraint{Raw: raw}
	for _, group := range strings.Split(raw, "||") {
		var clauses []Clause
		for _, part := range strings.Split(group, ",") {
			texts := splitClauses(part)
			if len(texts) == 0 {
				return Constraint{}, errEmptyConstraint
			}
			for _, text := range texts {
				clause, err := parseClause(text)
				if err != nil {
					return Constraint{}, err
				}
				clauses = append(clauses, clause)
			}
		}
		constraint.Groups = append(constraint.Groups, clauses)
	}
	return constraint, nil
}

// splitClauses separates whitespace-delimited clauses such as ">=1.2 <2.0", keeping a lone
// operator together with the version that follows it (">= 1.2").
func splitClauses(part string) []string {
	var texts []string
	pending := ""
	for _, field := range strings.Fields(part) {
		if operatorPattern.MatchString(field) {
			pending += field
			continue
		}
		texts = append(texts, pending+field)
		pending = ""
	}
	if pending != "" {
		texts = append(texts, pending)
	}
	return texts
}

func parseClause(text string) (Clause, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Clause{}, errEmptyConstraint
	}
	matches := clausePattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return Clause{}, fmt.Errorf("invalid constraint clause %q", trimmed)
	}
	op := matches[1]
	if op == "=" {
		op = "=="
	}
	// "===" compares arbitrary strings; every other operator needs a version number
	if op != "===" && !numericStart.MatchString(matches[2]) {
		return Clause{}, fmt.Errorf("invalid version %q in clause %q", matches[2], trimmed)
	}
	return Clause{Op: op, Version: matches[2]}, nil
}

// ExactVersion returns the pinned version when the constraint is a single exact clause.
func (c Constraint) ExactVersion() (string, bool) {
	if len(c.Groups) != 1 || len(c.Groups[0]) != 1 {
		return "", false
	}
	clause := c.Groups[0][0]
	switch clause.Op {
	case "==", "===", "":
		if strings.HasSuffix(clause.Version, ".*") {
			return "", false
		}
		return clause.Version, true
	default:
		return "", false
	}
}

// Satisfies reports whether version satisfies the constraint. The second return value is true
// when any comparison fell back to lexicographic ordering.
func (c Constraint) Satisfies(version string) (bool, bool) {
	lexicographic := false
	for _, group := range c.Groups {
		ok := true
		for _, clause := range group {
			held, lexi := clause.holds(version)
			lexicographic = lexicographic || lexi
			if !held {
				ok = false
				break
			}
		}
		if ok {
			return true, lexicographic
		}
	}
	return false, lexicographic
}

func (cl Clause) holds(version string) (bool, bool) {
	switch cl.Op {
	case "===":
		return strings.TrimSpace(version) == cl.Version, false
	case "==", "":
		return cl.matches(version)
	case "!=":
		held, lexi := cl.matches(version)
		return !held, lexi
	case ">=":
		cmp, lexi := CompareVersions(version, cl.Version)
		return cmp >= 0, lexi
	case "<=":
		cmp, lexi := CompareVersions(version, cl.Version)
		return cmp <= 0, lexi
	case ">":
		cmp, lexi := CompareVersions(version, cl.Version)
		return cmp > 0, lexi
	case "<":
		cmp, lexi := CompareVersions(version, cl.Version)
		return cmp < 0, lexi
	case "~=", "^", "~":
		return cl.withinBounds(version)
	default:
		return false, false
	}
}

// matches implements equality, including "1.2.*" prefix wildcards.
func (cl Clause) matches(version string) (bool, bool) {
	prefix, wildcard := strings.CutSuffix(cl.Version, ".*")
	if !wildcard {
		cmp, lexi := CompareVersions(version, cl.Version)
		return cmp == 0, lexi
	}

	want, okWant := releaseSegments(prefix)
	got, okGot := releaseSegments(version)
	if !okWant || !okGot {
		return strings.HasPrefix(strings.TrimSpace(version), prefix+"."), true
	}
	for i, n := range want {
		current := 0
		if i < len(got) {
			current = got[i]
		}
		if current != n {
			return false, false
		}
	}
	return true, false
}

// withinBounds handles the operators that expand to ">=lower, <upper".
func (cl Clause) withinBounds(version string) (bool, bool) {
	segments, ok := releaseSegments(cl.Version)
	if !ok {
		cmp, _ := CompareVersions(version, cl.Version)
		return cmp >= 0, true
	}

	lowerCmp, lexi := CompareVersions(version, cl.Version)
	if lowerCmp < 0 {
		return false, lexi
	}

	upper := upperBound(cl.Op, segments)
	if upper == "" {
		return true, lexi
	}
	upperCmp, upperLexi := CompareVersions(version, upper)
	return upperCmp < 0, lexi || upperLexi
}

// upperBound computes the exclusive upper bound for compatible-release, caret and tilde clauses.
func upperBound(op string, segments []int) string {
	bump := -1
	switch op {
	case "~=":
		// ~=1.4.2 means <1.5, ~=1.4 means <2; a single segment is not a valid compatible release.
		if len(segments) < 2 {
			return ""
		}
		bump = len(segments) - 2
	case "~":
		bump = 0
		if len(segments) >= 2 {
			bump = 1
		}
	case "^":
		bump = len(segments) - 1
		for i, n := range segments {
			if n != 0 {
				bump = i
				break
			}
		}
	}
	if bump < 0 {
		return ""
	}

	width := max(3, bump+1)
	bound := make([]string, 0, width)
	for i := range width {
		switch {
		case i < bump && i < len(segments):
			bound = append(bound, strconv.Itoa(segments[i]))
		case i == bump:
			bound = append(bound, strconv.Itoa(segments[i]+1))
		default:
			bound = append(bound, "0")
		}
	}
	return strings.Join(bound, ".")
}
