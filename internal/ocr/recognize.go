package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RecognizeText rasterizes every page of the document and runs optical
// recognition on each image, concatenating the page texts with a "Page N"
// label per page. Used only as the fallback when the direct text layer
// yields no contact signal.
func (e *Extractor) RecognizeText(ctx context.Context, path string) (TextResult, error) {
	tmpDir, err := os.MkdirTemp("", "ts-pp-*")
	if err != nil {
		return TextResult{}, err
	}
	defer func(dir string) {
		if rerr := os.RemoveAll(dir); rerr != nil {
			e.logger.Warn("remove temp dir", "dir", dir, "error", rerr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return TextResult{}, fmt.Errorf("pdftoppm: %w (stderr: %s)", err, truncate(string(errb), 1<<10))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	images, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(images)
	if e.cfg.MaxPages > 0 && len(images) > e.cfg.MaxPages {
		images = images[:e.cfg.MaxPages]
	}
	if len(images) == 0 {
		return TextResult{}, fmt.Errorf("pdftoppm produced no images")
	}

	var b strings.Builder
	for n, img := range images {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.TesseractLang)
		if err != nil {
			return TextResult{}, fmt.Errorf("tesseract page %d: %w (stderr: %s)", n+1, err, truncate(string(errb), 1<<10))
		}
		fmt.Fprintf(&b, "Page %d\n\n%s\n\n", n+1, out)
	}
	return TextResult{Text: b.String(), Pages: len(images), Method: "pdf-ocr"}, nil
}
