package extract

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// similarityThreshold is the minimum token-set score (exclusive) for the
// best-scoring candidate to be chosen over the first one.
const similarityThreshold = 30

// ResolveName picks the candidate whose lower-cased text is most similar to
// the email local-part, by token-set ratio. Ties keep the earliest candidate.
// When the best score is at or below the threshold the first candidate in
// document order is returned, never a sentinel.
func ResolveName(candidates []NameCandidate, email string) string {
	if len(candidates) == 0 {
		return NoNameFound
	}
	if email == "" {
		return NoEmailFound
	}

	local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	best, bestScore := 0, -1
	for i, c := range candidates {
		score := fuzzy.TokenSetRatio(local, strings.ToLower(c.Text))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore > similarityThreshold {
		return candidates[best].Text
	}
	return candidates[0].Text
}
