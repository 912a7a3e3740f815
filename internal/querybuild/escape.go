package querybuild

import (
	"fmt"
	"strings"
)

// EscapeString escapes a value for embedding inside a double-quoted string
// literal in query text. Backslashes are escaped before quotes: reversing
// the order would re-escape the backslashes introduced by quote escaping.
//
// The function is total and drops no characters, so the round trip of
// escape → embed → store-side unescape reproduces the original value
// exactly.
func EscapeString(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(escaped, `"`, `\"`)
}

// renderLiteral renders a Go value as an embedded query literal. Strings
// are double-quoted and escaped; booleans render lowercase; everything
// else renders through %v.
func renderLiteral(v any) string {
	switch val := v.(type) {
	case string:
		return `"` + EscapeString(val) + `"`
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderLiteralList renders a list literal for IN clauses.
func renderLiteralList(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = renderLiteral(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
