package stringsx

import "testing"

func TestIsIdentifier(t *testing.T) {
	testCases := []struct {
		name     string
		s        string
		expected bool
	}{
		{name: "Pascal case", s: "ExampleCommand", expected: true},
		{name: "Kebab case", s: "named-command", expected: true},
		{name: "Leading underscore", s: "_hidden", expected: true},
		{name: "Digits after first rune", s: "Method2", expected: true},
		{name: "Leading digit", s: "2fast", expected: false},
		{name: "Leading hyphen", s: "-flag", expected: false},
		{name: "Path separator", s: "tmp/file", expected: false},
		{name: "Dot", s: "Type.Method", expected: false},
		{name: "Whitespace", s: "two words", expected: false},
		{name: "Empty string", s: "", expected: false},
		{name: "Unicode letters", s: "ñandú", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := IsIdentifier(tc.s); result != tc.expected {
				t.Errorf("Failed %s: expected %v, got %v", tc.name, tc.expected, result)
			}
		})
	}
}
