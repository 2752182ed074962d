// Package pipeline sequences the extractors over a document: a direct text
// pass first, then a single page-by-page recognition pass when the direct
// pass yields no contact signal at all. The second pass re-derives every
// field from the recognized text; there is no partial caching and no retry
// beyond that one fallback.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentsift/talentsift/internal/extract"
	"github.com/talentsift/talentsift/internal/nlp"
	"github.com/talentsift/talentsift/internal/ocr"
	"github.com/talentsift/talentsift/internal/vocab"
)

// TextSource acquires raw text from a document path.
type TextSource interface {
	DirectText(ctx context.Context, path string) (ocr.TextResult, error)
	RecognizeText(ctx context.Context, path string) (ocr.TextResult, error)
}

// Config holds orchestrator behavior flags.
type Config struct {
	// OCRTimeout bounds the recognition fallback, the dominant latency cost.
	// Zero disables the bound. The direct pass is not bounded here.
	OCRTimeout time.Duration
}

type Pipeline struct {
	logger *slog.Logger
	cfg    Config
	source TextSource
	tagger nlp.Tagger
	vocab  *vocab.Vocabulary
}

func New(logger *slog.Logger, cfg Config, source TextSource, tagger nlp.Tagger, v *vocab.Vocabulary) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, cfg: cfg, source: source, tagger: tagger, vocab: v}
}

// Process runs the full extraction for one document and always returns a
// best-guess result. Only text acquisition and tagging failures are errors;
// a document where nothing was found produces sentinels and empty lists.
func (p *Pipeline) Process(ctx context.Context, path string) (extract.Result, error) {
	direct, err := p.source.DirectText(ctx, path)
	if err != nil {
		return extract.Result{}, fmt.Errorf("direct text extraction: %w", err)
	}

	res, contacts, err := p.runExtractors(direct.Text)
	if err != nil {
		return extract.Result{}, err
	}
	p.logger.Info("direct extraction done",
		"path", path,
		"method", direct.Method,
		"pages", direct.Pages,
		"emails", len(contacts.Emails),
		"phones", len(contacts.Phones),
		"skills", len(res.Skills),
	)
	if !contacts.Empty() {
		return res, nil
	}

	// No email and no phone in the text layer: assume a scanned document
	// and re-run everything over recognized text. One attempt, never
	// recursive; an empty fallback result is a valid terminal outcome.
	octx := ctx
	if p.cfg.OCRTimeout > 0 {
		var cancel context.CancelFunc
		octx, cancel = context.WithTimeout(ctx, p.cfg.OCRTimeout)
		defer cancel()
	}
	recognized, err := p.source.RecognizeText(octx, path)
	if err != nil {
		return extract.Result{}, fmt.Errorf("recognition fallback: %w", err)
	}

	res, contacts, err = p.runExtractors(recognized.Text)
	if err != nil {
		return extract.Result{}, err
	}
	p.logger.Info("fallback extraction done",
		"path", path,
		"pages", recognized.Pages,
		"emails", len(contacts.Emails),
		"phones", len(contacts.Phones),
		"skills", len(res.Skills),
	)
	return res, nil
}

func (p *Pipeline) runExtractors(text string) (extract.Result, extract.ContactFields, error) {
	contacts := extract.Contacts(text)

	candidates, err := extract.NameCandidates(p.tagger, text)
	if err != nil {
		return extract.Result{}, contacts, fmt.Errorf("name extraction: %w", err)
	}

	res := extract.Result{
		EmailID:     extract.NoEmailFound,
		PhoneNumber: extract.NoPhoneFound,
		Name:        extract.NoEmailFound,
		Skills:      extract.MatchSkills(text, p.vocab.Skills()),
	}
	if len(contacts.Emails) > 0 {
		res.EmailID = contacts.Emails[0]
		if len(candidates) == 0 {
			res.Name = extract.NoNameFound
		} else {
			res.Name = extract.ResolveName(candidates, contacts.Emails[0])
		}
	}
	if len(contacts.Phones) > 0 {
		res.PhoneNumber = contacts.Phones[0]
	}

	sections := extract.Sections(text)
	dates := extract.DateRangesFrom(sections, time.Now())
	res.InternshipDates = dates.Internship
	res.ExperienceDates = dates.Experience
	res.FellowshipDates = dates.Fellowship

	return res, contacts, nil
}
