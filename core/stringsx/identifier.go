package stringsx

import "unicode"

// IsIdentifier reports whether s is a command-line identifier: a letter or underscore
// followed by letters, digits, underscores or hyphens.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-'):
		default:
			return false
		}
	}

	return true
}
