package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talentsift/talentsift/internal/common"
	"github.com/talentsift/talentsift/internal/nlp"
	"github.com/talentsift/talentsift/internal/ocr"
	"github.com/talentsift/talentsift/internal/pipeline"
	"github.com/talentsift/talentsift/internal/server"
	"github.com/talentsift/talentsift/internal/vocab"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	v, err := vocab.Load(cfg.Vocab.Path, cfg.Vocab.Column)
	if err != nil {
		logger.Error("loading skill vocabulary", "path", cfg.Vocab.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("skill vocabulary loaded", "path", cfg.Vocab.Path, "skills", v.Len())

	// Construct the tagger once at startup, not per request.
	tagger := nlp.Default()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	pipe := pipeline.New(logger, pipeline.Config{OCRTimeout: cfg.OCR.Timeout}, extractor, tagger, v)
	srv := server.New(logger, pipe, cfg.Server)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
