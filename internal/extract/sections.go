package extract

import (
	"strings"

	"github.com/talentsift/talentsift/constants"
)

// Sections slices the text into labeled sections using heading matches
// anchored at line starts. Each section's content is the text strictly
// between the end of its heading match and the start of the next one (or
// end of document), trimmed of surrounding whitespace. Matches are derived
// from one linear scan, so sections never overlap; adjacent headings yield
// a section with empty content. No heading match yields an empty list.
func Sections(text string) []Section {
	locs := constants.HeadingPattern.FindAllStringIndex(text, -1)
	out := make([]Section, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, Section{
			Heading: text[loc[0]:loc[1]],
			Content: strings.TrimSpace(text[loc[1]:end]),
		})
	}
	return out
}
