package stringsx

import "testing"

func TestOneOf(t *testing.T) {
	testCases := []struct {
		name     string
		s        string
		ss       []string
		expected bool
	}{
		{name: "Exact match", s: "json", ss: []string{"text", "json"}, expected: true},
		{name: "Case-insensitive match", s: "YES", ss: []string{"yes", "on"}, expected: true},
		{name: "No match", s: "xml", ss: []string{"text", "json"}, expected: false},
		{name: "Empty list", s: "text", ss: nil, expected: false},
		{name: "Empty string", s: "", ss: []string{""}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := OneOf(tc.s, tc.ss...); result != tc.expected {
				t.Errorf("Failed %s: expected %v, got %v", tc.name, tc.expected, result)
			}
		})
	}
}
