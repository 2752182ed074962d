// Command runextract runs the extraction pipeline over a single resume file
// and prints the result JSON, for local runs and debugging.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/talentsift/talentsift/internal/common"
	"github.com/talentsift/talentsift/internal/nlp"
	"github.com/talentsift/talentsift/internal/ocr"
	"github.com/talentsift/talentsift/internal/pipeline"
	"github.com/talentsift/talentsift/internal/vocab"
)

func main() {
	skillsPath := flag.String("skills", "", "skill vocabulary file (csv or xlsx); defaults to SKILLS_PATH")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: runextract [-skills file] <resume.pdf>")
		os.Exit(2)
	}

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *skillsPath != "" {
		cfg.Vocab.Path = *skillsPath
	}

	v, err := vocab.Load(cfg.Vocab.Path, cfg.Vocab.Column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading skill vocabulary: %v\n", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	pipe := pipeline.New(logger, pipeline.Config{OCRTimeout: cfg.OCR.Timeout}, extractor, nlp.Default(), v)

	res, err := pipe.Process(context.Background(), flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
