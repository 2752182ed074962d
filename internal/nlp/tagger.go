// Package nlp wraps the part-of-speech tagging engine behind a small
// interface so the extractors can be tested without loading the model.
package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// Token is a single tagged token in document order.
type Token struct {
	Text string
	Tag  string // Penn Treebank tag; proper nouns are NNP/NNPS
}

// Tagger tags raw text. Implementations must be safe for concurrent use.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// IsProperNoun reports whether a tag marks a proper noun.
func IsProperNoun(tag string) bool {
	return strings.HasPrefix(tag, "NNP")
}

type proseTagger struct{}

func (proseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging document: %w", err)
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, Token{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}

var (
	defaultOnce   sync.Once
	defaultTagger Tagger
)

// Default returns the process-wide tagger. The prose model is expensive to
// set up, so it is constructed once and reused across requests.
func Default() Tagger {
	defaultOnce.Do(func() {
		defaultTagger = proseTagger{}
	})
	return defaultTagger
}
