// Package textproc normalizes raw resume text into the haystack the skill
// matcher searches: lower-cased tokens with stop-words removed, rejoined by
// single spaces. Word boundaries lost by the rejoin are an accepted tradeoff.
package textproc

import (
	"strings"
	"unicode"
)

// Normalize strips carriage returns, tokenizes, lower-cases every token,
// drops stop-words and rejoins the rest with single spaces.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	var kept []string
	for _, tok := range Tokenize(s) {
		tok = strings.ToLower(tok)
		if _, stop := stopwords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// Tokenize splits text on whitespace and peels leading and trailing
// punctuation runs into their own tokens, so "React," becomes ["React", ","].
func Tokenize(s string) []string {
	var out []string
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		start, end := 0, len(runes)
		for start < end && isTokenPunct(runes[start]) {
			start++
		}
		for end > start && isTokenPunct(runes[end-1]) {
			end--
		}
		if start > 0 {
			out = append(out, string(runes[:start]))
		}
		if end > start {
			out = append(out, string(runes[start:end]))
		}
		if end < len(runes) {
			out = append(out, string(runes[end:]))
		}
	}
	return out
}

func isTokenPunct(r rune) bool {
	// '+' and '#' stay attached so "C++" and "C#" survive as single tokens.
	if r == '+' || r == '#' {
		return false
	}
	return unicode.IsPunct(r)
}
