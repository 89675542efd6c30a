package synth

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalize upper-cases the first rune and lower-cases the rest ("rEd apple" -> "Red apple").
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// firstRunes returns at most n leading runes of s.
func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// splitKeywords parses a comma-separated keyword list, trimming and capitalizing each item
// and dropping empty ones.
func splitKeywords(keywords string) []string {
	var out []string
	for _, part := range strings.Split(keywords, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, capitalize(part))
	}
	return out
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
