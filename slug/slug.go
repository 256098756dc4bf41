// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make lowercases the title, strips everything that is not a lowercase
// letter, digit, whitespace or hyphen, collapses whitespace and hyphen runs
// into single hyphens, and trims hyphens from both ends. A title that
// reduces to nothing yields a time-based fallback so a slug is never empty.
func Make(title string) string {
	s := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	out := b.String()
	out = strings.Join(strings.Fields(out), "-")
	out = collapseHyphens(out)
	out = strings.Trim(out, "-")

	if out == "" {
		return Fallback(0)
	}
	return out
}

// Fallback produces a placeholder slug for rows without a usable title.
// The row id is included when known so two backfilled rows cannot collide
// on the same timestamp.
func Fallback(id uint) string {
	if id > 0 {
		return fmt.Sprintf("post-%d-%d", id, time.Now().UnixNano())
	}
	return fmt.Sprintf("post-%d", time.Now().UnixNano())
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
