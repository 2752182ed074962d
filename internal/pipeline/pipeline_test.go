package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/internal/extract"
	"github.com/talentsift/talentsift/internal/nlp"
	"github.com/talentsift/talentsift/internal/ocr"
	"github.com/talentsift/talentsift/internal/vocab"
)

type fakeSource struct {
	directText     string
	recognizedText string
	directCalls    int
	recognizeCalls int
}

func (f *fakeSource) DirectText(context.Context, string) (ocr.TextResult, error) {
	f.directCalls++
	return ocr.TextResult{Text: f.directText, Pages: 1, Method: "pdf-text"}, nil
}

func (f *fakeSource) RecognizeText(context.Context, string) (ocr.TextResult, error) {
	f.recognizeCalls++
	return ocr.TextResult{Text: f.recognizedText, Pages: 1, Method: "pdf-ocr"}, nil
}

// wordTagger tags capitalized words as proper nouns, which is close enough
// to exercise the pipeline without the real model.
type wordTagger struct{}

func (wordTagger) Tag(text string) ([]nlp.Token, error) {
	var toks []nlp.Token
	for _, f := range strings.Fields(text) {
		word := strings.Trim(f, ".,:@")
		tag := "NN"
		if word != "" && word[0] >= 'A' && word[0] <= 'Z' {
			tag = "NNP"
		}
		toks = append(toks, nlp.Token{Text: word, Tag: tag})
	}
	return toks, nil
}

func newTestPipeline(src TextSource) *Pipeline {
	return New(nil, Config{}, src, wordTagger{}, vocab.New([]string{"Go", "Python"}))
}

func TestProcessDirectPathOnly(t *testing.T) {
	src := &fakeSource{
		directText: "Jane Doe\njane.doe@example.com\n555-123-4567\nSkills\nGo and Python\nWork Experience\nJan 2019 – present",
	}
	p := newTestPipeline(src)

	res, err := p.Process(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, src.directCalls)
	assert.Equal(t, 0, src.recognizeCalls, "fallback must not run when contacts were found")

	assert.Equal(t, "jane.doe@example.com", res.EmailID)
	assert.Equal(t, "555-123-4567", res.PhoneNumber)
	assert.Equal(t, "Jane Doe", res.Name)
	assert.Equal(t, []string{"Go", "Python"}, res.Skills)
	assert.NotEmpty(t, res.ExperienceDates)
}

func TestProcessFallbackExactlyOnce(t *testing.T) {
	src := &fakeSource{
		directText:     "scanned page with no contact signal",
		recognizedText: "Page 1\n\nJohn Smith\njohn.smith@example.com\n",
	}
	p := newTestPipeline(src)

	res, err := p.Process(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, src.recognizeCalls)
	assert.Equal(t, "john.smith@example.com", res.EmailID)
	assert.Equal(t, "John Smith", res.Name)
	assert.Equal(t, extract.NoPhoneFound, res.PhoneNumber)
}

func TestProcessFallbackEmptyIsTerminal(t *testing.T) {
	src := &fakeSource{
		directText:     "nothing here",
		recognizedText: "still nothing here",
	}
	p := newTestPipeline(src)

	res, err := p.Process(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, src.recognizeCalls, "fallback runs exactly once, never recursively")
	assert.Equal(t, extract.NoEmailFound, res.EmailID)
	assert.Equal(t, extract.NoPhoneFound, res.PhoneNumber)
	assert.Equal(t, extract.NoEmailFound, res.Name)
	assert.Empty(t, res.Skills)
	assert.NotNil(t, res.Skills, "skills must encode as [] not null")
}

func TestProcessDeterministic(t *testing.T) {
	src := &fakeSource{
		directText: "Jane Doe\njane.doe@example.com\nSkills\nGo",
	}
	p := newTestPipeline(src)

	first, err := p.Process(context.Background(), "resume.pdf")
	require.NoError(t, err)
	second, err := p.Process(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
