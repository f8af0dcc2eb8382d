package pyproject

import (
	"regexp"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`^\s*\[\s*([^\[\]]+?)\s*\]\s*(#.*)?$`)
	keyPattern    = regexp.MustCompile(`^\s*(?:"([^"]+)"|'([^']+)'|([A-Za-z0-9_.-]+))\s*=`)
)

// keyLines maps "table.key" to the 1-based line on which the key is assigned. go-toml decodes
// into maps, so this is how file order and line numbers survive.
func keyLines(content string) map[string]int {
	lines := make(map[string]int)
	table := ""
	for i, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			table = normalizeHeader(m[1])
			continue
		}
		m := keyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := m[1] + m[2] + m[3]
		id := table + "." + key
		if _, seen := lines[id]; !seen {
			lines[id] = i + 1
		}
	}
	return lines
}

func lineOf(lines map[string]int, section, key string) int {
	return lines[section+"."+key]
}

func normalizeHeader(header string) string {
	parts := strings.Split(header, ".")
	for i, part := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(part), `"'`)
	}
	return strings.Join(parts, ".")
}
