package common

import "strings"

// UnknownStr is the placeholder for unrecognized enum values in String() methods.
const UnknownStr = "unknown"

// SnakeToPascal converts a snake_case identifier to PascalCase.
// Identifiers that are already capitalized pass through with underscores
// removed ("age" -> "Age", "published_at" -> "PublishedAt", "ID" -> "ID").
func SnakeToPascal(s string) string {
	var b strings.Builder

	capitalize := true
	for _, c := range s {
		switch {
		case c == '_':
			capitalize = true
		case capitalize:
			b.WriteRune(toUpper(c))
			capitalize = false
		default:
			b.WriteRune(c)
		}
	}

	return b.String()
}

// PascalToSnake converts a PascalCase identifier to snake_case.
// Used for deterministic generated filenames ("PersonSummary" -> "person_summary").
func PascalToSnake(s string) string {
	var b strings.Builder

	for i, c := range s {
		if i > 0 && c >= 'A' && c <= 'Z' {
			b.WriteRune('_')
		}
		b.WriteRune(toLower(c))
	}

	return b.String()
}

func toUpper(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}

	return c
}
