package monitor

import "testing"

func TestSuggestFix(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"missing entry", "Missing entry point: index.html is required for rendering.", "Generate a basic index.html with a root div.", true},
		{"eval", "Security Risk: 'eval()' detected in app.js", "Replace eval() with JSON.parse() or a safer function alternative.", true},
		{"unknown", "Some unrelated problem", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		fix, ok := SuggestFix(tc.input)
		if ok != tc.ok || fix != tc.expected {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", tc.name, tc.expected, tc.ok, fix, ok)
		}
	}
}
