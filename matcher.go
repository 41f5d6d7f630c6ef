package colorscan

import (
	"iter"
	"regexp"
	"strings"
)

var (
	// colorPattern matches the supported color literal families, tried in order
	// at each position:
	//   - 6-digit hex (#1a2B3c)
	//   - tight rgba with 3-character channels: rgba(255,255,255,0.5)
	//   - loose rgba with ", " separators: rgba(0, 12, 255, 0.75)
	//   - rgb with exactly 11 characters between the parentheses: rgb(0, 0, 0)
	colorPattern = regexp.MustCompile(
		`(#[abcdefABCDEF1234567890]{6})` +
			`|(rgba\(.{3},.{3},.{3},.{2,4}\))` +
			`|(rgba\(.{1,3},\s.{1,3},\s.{1,3},\s.{2,4}\))` +
			`|(rgb\(.{11}\))`)

	// variableDefinition matches a stylesheet variable definition prefix.
	// Greedy: the prefix runs to the last colon on the line.
	variableDefinition = regexp.MustCompile(`^\$.*:`)
)

// FindColors returns every color literal in line, in order, case preserved.
// It returns nil when the line holds no color.
func FindColors(line string) []string {
	return colorPattern.FindAllString(line, -1)
}

// EachColor yields the color literals of line lazily, left to right.
func EachColor(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := line
		for {
			loc := colorPattern.FindStringIndex(rest)
			if loc == nil {
				return
			}
			if !yield(rest[loc[0]:loc[1]]) {
				return
			}
			// No family matches the empty string, so this always advances.
			rest = rest[loc[1]:]
		}
	}
}

// FirstColor returns the leftmost color literal in line.
func FirstColor(line string) (string, bool) {
	m := colorPattern.FindString(line)
	return m, m != ""
}

// NormalizeColor turns a matched literal into its aggregation key.
func NormalizeColor(literal string) string {
	return strings.ToLower(literal)
}

// variableName extracts the variable defined on line, without the trailing
// colon. The sigil is kept so references are found by plain substring search.
func variableName(line string) (string, bool) {
	m := variableDefinition.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.TrimSuffix(m, ":"), true
}
