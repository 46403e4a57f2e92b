package stringsx

import "strings"

// OneOf reports whether s equals any of ss, ignoring case.
func OneOf(s string, ss ...string) bool {
	for _, v := range ss {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
