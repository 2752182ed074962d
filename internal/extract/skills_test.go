package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	vocabulary := []string{"C", "Go", "React"}
	text := "I build systems in Go and React, not just C."

	got := MatchSkills(text, vocabulary)
	assert.Contains(t, got, "Go")
	assert.Contains(t, got, "React")
	// The first "c" in the normalized haystack sits inside "react", so the
	// single-character rule rejects the label there and then.
	assert.NotContains(t, got, "C")
}

func TestMatchSkillsSingleCharBoundary(t *testing.T) {
	// "c" only ever occurs inside other words: the single-character rule
	// must reject it even though plain containment would match.
	got := MatchSkills("React components cache", []string{"C"})
	assert.Empty(t, got)
}

func TestMatchSkillsSingleCharFirstOccurrenceOnly(t *testing.T) {
	// Only the first occurrence is tested. Normalized to
	// "c++ components c tooling", the first "c" is part of "c++" at
	// position 0, so the later standalone "c" never rescues the label.
	got := MatchSkills("C++ components C tooling", []string{"C"})
	assert.Empty(t, got)

	// Normalized to "using c c++", the first "c" stands alone.
	got = MatchSkills("using C and C++", []string{"C"})
	assert.Equal(t, []string{"C"}, got)
}

func TestMatchSkillsSubstringTradeoff(t *testing.T) {
	// Multi-character labels use unguarded containment: "Java" inside
	// "JavaScript" is a known false positive, kept deliberately.
	got := MatchSkills("Expert in JavaScript", []string{"Java", "JavaScript"})
	assert.Equal(t, []string{"Java", "JavaScript"}, got)
}

func TestMatchSkillsReportedOnce(t *testing.T) {
	got := MatchSkills("Go services and more Go tooling", []string{"Go", "go"})
	assert.Equal(t, []string{"Go"}, got)
}

func TestMatchSkillsEmptyVocabulary(t *testing.T) {
	assert.Empty(t, MatchSkills("anything", nil))
}
