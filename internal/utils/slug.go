package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives the URL-safe identifier of a display name: the name is
// lower-cased, every character other than ASCII letters, digits, whitespace
// and hyphens is removed, and runs of whitespace or hyphens collapse into a
// single hyphen. Leading and trailing hyphens are trimmed.
//
//	utils.Slugify("Jane Doe")        // "jane-doe"
//	utils.Slugify("  O'Brien, Ann ") // "obrien-ann"
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
