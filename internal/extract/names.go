package extract

import (
	"fmt"
	"strings"

	"github.com/talentsift/talentsift/internal/nlp"
)

// NameCandidates runs part-of-speech tagging over the text and returns every
// phrase of exactly two adjacent proper-noun tokens, scanned left to right
// without overlap. A tagging failure is fatal for this call so the caller
// gets a clear diagnostic instead of a silently empty name list.
func NameCandidates(tagger nlp.Tagger, text string) ([]NameCandidate, error) {
	toks, err := tagger.Tag(text)
	if err != nil {
		return nil, fmt.Errorf("pos tagging: %w", err)
	}

	var out []NameCandidate
	search := 0
	for i := 0; i+1 < len(toks); {
		if !nlp.IsProperNoun(toks[i].Tag) || !nlp.IsProperNoun(toks[i+1].Tag) {
			i++
			continue
		}
		pos := -1
		if idx := strings.Index(text[search:], toks[i].Text); idx >= 0 {
			pos = search + idx
			search = pos + len(toks[i].Text)
		}
		out = append(out, NameCandidate{
			Text: toks[i].Text + " " + toks[i+1].Text,
			Pos:  pos,
		})
		i += 2
	}
	return out, nil
}
