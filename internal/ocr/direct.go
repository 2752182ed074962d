package ocr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DirectText reads the document's primary text layer. It prefers the
// pdftotext binary; when that binary is not installed it falls back to the
// in-process PDF reader so the service still works on bare hosts.
func (e *Extractor) DirectText(ctx context.Context, path string) (TextResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			e.logger.Warn("pdftotext not found, using in-process reader", "path", path)
			return e.nativeText(path)
		}
		return TextResult{}, fmt.Errorf("pdftotext: %w (stderr: %s)", err, truncate(string(errb), 1<<10))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return TextResult{Text: text, Pages: pages, Method: "pdf-text"}, nil
}

func (e *Extractor) nativeText(path string) (TextResult, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return TextResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("close pdf", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			return TextResult{}, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return TextResult{Text: b.String(), Pages: pages, Method: "pdf-native"}, nil
}
