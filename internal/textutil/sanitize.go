// Package textutil provides the small text helpers shared by renaming and
// deduplication: filename sanitization and whitespace normalization.
package textutil

import "strings"

// SanitizeFileName strips every rune that is not alphanumeric or one of
// space, '.', '_', '-', '(' and ')'. Parentheses are kept so canonical
// "Title (1080p)" folder names round-trip through renaming unchanged. The
// result is trimmed of surrounding whitespace.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == '_' || r == '-' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
