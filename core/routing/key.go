package routing

import (
	"strings"

	"github.com/gobuffalo/flect"
	"golang.org/x/text/cases"
)

// Key returns the matching key of a command, type, parameter or property name.
// Keys ignore case and word separators, so "NamedCommand", "namedcommand",
// "named-command" and "named_command" share one key. Separators are dropped,
// so "a-b" and "ab" collide as well.
func Key(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	return cases.Fold().String(flect.Pascalize(name))
}

// SameName reports whether a and b have the same matching key.
func SameName(a, b string) bool {
	return a != "" && b != "" && Key(a) == Key(b)
}
