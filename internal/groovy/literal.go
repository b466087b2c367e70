// Package groovy renders configuration trees as ModsDotGroovy script source.
package groovy

import (
	"fmt"
	"regexp"
	"strings"
)

// Indent is one level of indentation in generated scripts.
const Indent = "    "

// PlaceholderMarker introduces an interpolated expression in a GString.
const PlaceholderMarker = "${"

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s can be written as a bare Groovy name.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// HasPlaceholder reports whether s contains an interpolated expression.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, PlaceholderMarker)
}

// Quote renders s as a string literal. Text containing a placeholder becomes a
// double-quoted GString so the expression stays live; anything else is single-quoted.
func Quote(s string) string {
	if HasPlaceholder(s) {
		return `"` + escape(s, '"', true, false) + `"`
	}
	return "'" + escape(s, '\'', false, false) + "'"
}

// QuoteBlock renders s as a triple-quoted literal, keeping line breaks as written.
func QuoteBlock(s string) string {
	if HasPlaceholder(s) {
		return `"""` + escape(s, '"', true, true) + `"""`
	}
	return "'''" + escape(s, '\'', false, true) + "'''"
}

// Key renders a map key: bare when it is an identifier, quoted otherwise.
func Key(s string) string {
	if IsIdentifier(s) {
		return s
	}
	return Quote(s)
}

// Identifier turns s into a valid variable name by replacing disallowed characters.
func Identifier(s string) string {
	if IsIdentifier(s) {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r == '$':
			if i == 0 {
				b.WriteByte('_')
			} else {
				b.WriteRune(r)
			}
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// escape escapes s for a literal delimited by quote. Block literals keep raw line
// breaks and only escape quote characters that could join the closing delimiter.
func escape(s string, quote byte, interpolating, block bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == quote:
			if !block || i+1 == len(s) || s[i+1] == quote {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		case c == '$' && interpolating && !strings.HasPrefix(s[i:], PlaceholderMarker):
			b.WriteString(`\$`)
		case c == '\n' && !block:
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t' && !block:
			b.WriteString(`\t`)
		case c < 0x20 && c != '\n' && c != '\t' || c == 0x7f:
			fmt.Fprintf(&b, `\u%04x`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
