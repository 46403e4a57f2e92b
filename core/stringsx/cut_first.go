package stringsx

import "strings"

// CutFirst slices s around the earliest occurrence of any non-empty separator in seps.
// If several separators start at the same index the longest one is used.
// If none is found, CutFirst returns s, "", false.
func CutFirst(s string, seps ...string) (before, after string, found bool) {
	at, width := -1, 0
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		i := strings.Index(s, sep)
		if i < 0 {
			continue
		}
		if at < 0 || i < at || (i == at && len(sep) > width) {
			at, width = i, len(sep)
		}
	}
	if at < 0 {
		return s, "", false
	}
	return s[:at], s[at+width:], true
}
