package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/internal/nlp"
)

type stubTagger struct {
	tokens []nlp.Token
	err    error
}

func (s stubTagger) Tag(string) ([]nlp.Token, error) {
	return s.tokens, s.err
}

func TestNameCandidates(t *testing.T) {
	text := "Jane Doe is a Software Engineer at Acme Corp"
	tagger := stubTagger{tokens: []nlp.Token{
		{Text: "Jane", Tag: "NNP"},
		{Text: "Doe", Tag: "NNP"},
		{Text: "is", Tag: "VBZ"},
		{Text: "a", Tag: "DT"},
		{Text: "Software", Tag: "NN"},
		{Text: "Engineer", Tag: "NN"},
		{Text: "at", Tag: "IN"},
		{Text: "Acme", Tag: "NNP"},
		{Text: "Corp", Tag: "NNP"},
	}}

	got, err := NameCandidates(tagger, text)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0].Text)
	assert.Equal(t, 0, got[0].Pos)
	assert.Equal(t, "Acme Corp", got[1].Text)
	assert.Equal(t, len("Jane Doe is a Software Engineer at "), got[1].Pos)
}

func TestNameCandidatesNonOverlapping(t *testing.T) {
	// Three adjacent proper nouns yield one candidate, not two overlapping
	// windows; the scan resumes after the consumed pair.
	tagger := stubTagger{tokens: []nlp.Token{
		{Text: "Mary", Tag: "NNP"},
		{Text: "Jane", Tag: "NNP"},
		{Text: "Watson", Tag: "NNP"},
	}}
	got, err := NameCandidates(tagger, "Mary Jane Watson")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mary Jane", got[0].Text)
}

func TestNameCandidatesTaggerFailureIsFatal(t *testing.T) {
	wantErr := errors.New("model unavailable")
	_, err := NameCandidates(stubTagger{err: wantErr}, "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestNameCandidatesNoProperNouns(t *testing.T) {
	tagger := stubTagger{tokens: []nlp.Token{
		{Text: "writes", Tag: "VBZ"},
		{Text: "code", Tag: "NN"},
	}}
	got, err := NameCandidates(tagger, "writes code")
	require.NoError(t, err)
	assert.Empty(t, got)
}
