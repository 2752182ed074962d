// Package ocr acquires raw text from a resume document. The direct path
// reads the PDF text layer; the recognition path rasterizes each page and
// runs optical recognition on it. Both shell out through a Runner so tests
// can stub the external binaries.
package ocr

import (
	"log/slog"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned pages, default 400
	MaxPages      int    // 0 = no limit
}

// TextResult is the outcome of one text acquisition.
type TextResult struct {
	Text   string
	Pages  int
	Method string // "pdf-text" | "pdf-native" | "pdf-ocr"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return NewExtractorWithRunner(cfg, execRunner{logger: logger}, logger)
}

// NewExtractorWithRunner is NewExtractor with an explicit Runner, for tests.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 400
	}
	return &Extractor{cfg: cfg, runner: r, logger: logger}
}
