package helper

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a title or tag name. Slugs are generated
// once at creation time and never change afterwards.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress leading dashes

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
