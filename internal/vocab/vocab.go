// Package vocab loads the controlled skill vocabulary from a tabular
// resource. Values are trimmed of surrounding whitespace and quote
// characters, case is preserved for output, and order is kept. The
// vocabulary is loaded once at startup and never mutated afterwards.
package vocab

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Vocabulary is an ordered, read-only set of skill labels.
type Vocabulary struct {
	skills []string
}

// New builds a vocabulary from an already-cleaned list, mostly for tests
// and the one-shot CLI.
func New(skills []string) *Vocabulary {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if c := clean(s); c != "" {
			out = append(out, c)
		}
	}
	return &Vocabulary{skills: out}
}

// Skills returns the labels in vocabulary order. Callers must not mutate it.
func (v *Vocabulary) Skills() []string {
	return v.skills
}

func (v *Vocabulary) Len() int {
	return len(v.skills)
}

// Load reads the named column from a CSV or XLSX file.
func Load(path, column string) (*Vocabulary, error) {
	if column == "" {
		column = "skills"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path, column)
	case ".xlsx":
		return loadXLSX(path, column)
	default:
		return nil, fmt.Errorf("unsupported vocabulary format: %q", filepath.Ext(path))
	}
}

func loadCSV(path, column string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read vocabulary csv: %w", err)
	}
	return fromRows(rows, column, path)
}

func loadXLSX(path, column string) (*Vocabulary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("vocabulary workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read vocabulary sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows, column, path)
}

func fromRows(rows [][]string, column, path string) (*Vocabulary, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("vocabulary %q is empty", path)
	}
	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("vocabulary %q has no %q column", path, column)
	}
	var skills []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if c := clean(row[col]); c != "" {
			skills = append(skills, c)
		}
	}
	return &Vocabulary{skills: skills}, nil
}

func clean(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
