package extract

import (
	"strings"

	"github.com/talentsift/talentsift/internal/textproc"
)

// MatchSkills reports every vocabulary entry found in the normalized text,
// each at most once, preserving vocabulary order and case. Multi-character
// labels use plain substring containment, so "Java" also matches inside
// "JavaScript". Single-character labels are tested at their first occurrence
// only: the skill matches when that occurrence is flanked by spaces, so a
// first occurrence embedded in another token (or at position 0 or the very
// end) rejects the label even if a later standalone occurrence exists.
func MatchSkills(text string, vocabulary []string) []string {
	haystack := textproc.Normalize(text)
	found := make([]string, 0)
	seen := make(map[string]struct{}, len(vocabulary))

	for _, skill := range vocabulary {
		lower := strings.ToLower(skill)
		if lower == "" {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		var hit bool
		if len(lower) == 1 {
			idx := strings.Index(haystack, lower)
			hit = idx > 0 && idx+1 < len(haystack) &&
				haystack[idx-1] == ' ' && haystack[idx+1] == ' '
		} else {
			hit = strings.Contains(haystack, lower)
		}
		if !hit {
			continue
		}
		seen[lower] = struct{}{}
		found = append(found, skill)
	}
	return found
}
