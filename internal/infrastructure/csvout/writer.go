// Package csvout exports screening decisions as tabular CSV, the hand-off
// format consumed by review-management tooling.
package csvout

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"BibScreen/internal/domain"
	"BibScreen/internal/ports"
)

var header = []string{"Key", "Title", "Decision", "Reason"}

// Writer emits one CSV row per decision, preserving input order.
type Writer struct {
	out io.Writer
}

var _ ports.DecisionWriter = (*Writer)(nil)

// NewWriter writes CSV to the given destination.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteAll writes the header followed by every decision in sequence.
func (w *Writer) WriteAll(_ context.Context, decisions []domain.Decision) error {
	cw := csv.NewWriter(w.out)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, d := range decisions {
		row := []string{d.Key, d.Title, string(d.Verdict), d.Reason}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", d.Key, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FileWriter writes the decision sequence to a file path, creating or
// truncating the target.
type FileWriter struct {
	path string
}

var _ ports.DecisionWriter = (*FileWriter)(nil)

// NewFileWriter targets the given path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// WriteAll creates the file and delegates to Writer.
func (f *FileWriter) WriteAll(ctx context.Context, decisions []domain.Decision) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.path, err)
	}

	if err := NewWriter(file).WriteAll(ctx, decisions); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}
