package slug

import (
	"regexp"
	"strings"
)

const maxLength = 200

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Make derives a URL-safe identifier from a title: lowercase, trimmed,
// characters outside [a-z0-9 _-] stripped, separator runs collapsed to a
// single hyphen, leading/trailing hyphens removed. Deterministic and
// idempotent; uniqueness is the caller's problem.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLength {
		s = strings.Trim(s[:maxLength], "-")
	}
	return s
}
