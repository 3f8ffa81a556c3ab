// Package filename converts user-entered note titles into safe file names.
package filename

import (
	"strings"
	"unicode"
)

// Fallback is the base name used when a title sanitizes to nothing.
const Fallback = "note"

// Sanitize maps an arbitrary title to a filesystem-legal base name. Letters,
// digits, spaces, hyphens, underscores, and periods pass through; every
// other rune becomes a single underscore. Surrounding whitespace is trimmed
// afterwards, and an empty result falls back to "note".
func Sanitize(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if safe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return Fallback
	}
	return out
}

func safe(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == ' ' || r == '-' || r == '_' || r == '.'
}
