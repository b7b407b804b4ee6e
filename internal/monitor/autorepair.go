package monitor

import "strings"

// SuggestFix maps a known validation error message to a remediation hint.
// The second return is false when no suggestion applies; callers treat that
// as normal, not exceptional.
func SuggestFix(errorMessage string) (string, bool) {
	if strings.Contains(errorMessage, "index.html") {
		return "Generate a basic index.html with a root div.", true
	}
	if strings.Contains(errorMessage, "eval(") {
		return "Replace eval() with JSON.parse() or a safer function alternative.", true
	}
	return "", false
}
