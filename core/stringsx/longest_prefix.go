package stringsx

import "strings"

// LongestPrefix returns the longest non-empty prefix from prefixes that s starts with.
// The second result reports whether any prefix matched.
func LongestPrefix(s string, prefixes ...string) (string, bool) {
	var longest string
	for _, prefix := range prefixes {
		if prefix == "" || len(prefix) <= len(longest) {
			continue
		}
		if strings.HasPrefix(s, prefix) {
			longest = prefix
		}
	}
	return longest, longest != ""
}
