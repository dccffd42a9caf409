package domain

import "strings"

// NormalizeKey turns a raw token into its lookup key: every rune that is not
// an ASCII letter or a hyphen is dropped and the rest is lowercased.
//
// Accented letters are dropped, not transliterated ("Café-123" -> "caf-").
// An empty result means the token is not a classifiable word.
func NormalizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
