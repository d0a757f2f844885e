package textutil

import (
	"strings"
	"unicode"
)

// NormalizeName lowercases a name and drops everything that isn't a letter or
// a digit, so "HD - Movies" and "hd movies" compare equal.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
}

// MatchName reports whether the normalized name contains any of the matchers,
// matchers are expected to be normalized already.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
