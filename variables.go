package colorscan

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// customPropertyDefinition matches a line opening with a custom property
// declaration. Only used to tell a definition apart from a reference.
var customPropertyDefinition = regexp.MustCompile(`^\s*(--[A-Za-z0-9_-]+)\s*:`)

// Variables maps stylesheet variable names to the color key they were last
// assigned. Iteration follows first-definition order.
type Variables struct {
	values map[string]string
	names  []string
}

// NewVariables returns an empty variable table.
func NewVariables() *Variables {
	return &Variables{values: make(map[string]string)}
}

// Set records name = key. A redefinition replaces the value but keeps the
// name's original position.
func (v *Variables) Set(name, key string) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = key
}

// Lookup returns the color key assigned to name.
func (v *Variables) Lookup(name string) (string, bool) {
	key, ok := v.values[name]
	return key, ok
}

// Names returns the variable names in definition order.
func (v *Variables) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Len reports the number of variables.
func (v *Variables) Len() int {
	return len(v.names)
}

func (v *Variables) each(fn func(name, key string)) {
	for _, name := range v.names {
		fn(name, v.values[name])
	}
}

// definedOn reports which known variable, if any, line defines.
func (v *Variables) definedOn(line string) (string, bool) {
	if name, ok := variableName(line); ok {
		if _, known := v.values[name]; known {
			return name, true
		}
	}
	if m := customPropertyDefinition.FindStringSubmatch(line); m != nil {
		if _, known := v.values[m[1]]; known {
			return m[1], true
		}
	}
	return "", false
}

// ResolveLines scans stylesheet lines for variable definitions that carry a
// color literal. Lines without both are skipped.
func (v *Variables) ResolveLines(lines []string) {
	for _, line := range lines {
		name, ok := variableName(line)
		if !ok {
			continue
		}
		literal, ok := FirstColor(line)
		if !ok {
			continue
		}
		v.Set(name, NormalizeColor(literal))
	}
}

// ResolveCustomProperties records CSS custom property declarations whose value
// holds a color literal, e.g. "--brand: #112233;". Properties referenced via
// var() are left alone.
func (v *Variables) ResolveCustomProperties(content string) {
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			return
		}
		if !isCustomPropertyName(tt, text) {
			continue
		}
		name := string(text)

		// Declaration: name, optional whitespace, colon
		tt, _ = nextSignificant(lexer)
		if tt != css.ColonToken {
			continue
		}

		value, done := readDeclarationValue(lexer)
		if literal, ok := FirstColor(value); ok {
			v.Set(name, NormalizeColor(literal))
		}
		if done {
			return
		}
	}
}

func isCustomPropertyName(tt css.TokenType, text []byte) bool {
	switch tt {
	case css.CustomPropertyNameToken:
		return true
	case css.IdentToken:
		return strings.HasPrefix(string(text), "--")
	}
	return false
}

func nextSignificant(lexer *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, text := lexer.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, text
		}
	}
}

// readDeclarationValue collects raw token text until the end of the
// declaration. done is true when input is exhausted.
func readDeclarationValue(lexer *css.Lexer) (value string, done bool) {
	var sb strings.Builder
	depth := 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return sb.String(), true
		case css.SemicolonToken, css.RightBraceToken:
			if depth == 0 {
				return sb.String(), false
			}
		case css.LeftBraceToken:
			depth++
		}
		if tt == css.RightBraceToken {
			depth--
		}
		sb.Write(text)
	}
}
