package gen

import (
	"strings"
	"unicode"

	"property-sugar/internal/tree"
)

// FormatOptions prints properties as an object literal, e.g.
// `{ type: String, attribute: 'my-field' }`.
func FormatOptions(props []*tree.Property) string {
	if len(props) == 0 {
		return "{}"
	}

	var sb strings.Builder

	sb.WriteString("{ ")

	for i, p := range props {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(FormatProperty(p))
	}

	sb.WriteString(" }")

	return sb.String()
}

// FormatProperty prints a synthesized key: value property.
func FormatProperty(p *tree.Property) string {
	return formatKey(p.Key) + ": " + FormatValue(p.Value)
}

// FormatValue prints a synthesized expression. Strings are single-quoted.
func FormatValue(e *tree.Expr) string {
	if e == nil {
		return "undefined"
	}

	if e.Kind == tree.ExprString {
		return quote(e.Value)
	}

	return e.Value
}

func formatKey(key string) string {
	if isIdentifier(key) {
		return key
	}

	return quote(key)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

func quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\'', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('\'')

	return sb.String()
}
