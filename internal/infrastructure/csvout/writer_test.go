package csvout

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BibScreen/internal/domain"
)

func TestWriterWriteAll(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	decisions := []domain.Decision{
		{Key: "a1", Title: "Osteoclastoma of the Atlas (C1): A Case Report", Verdict: domain.VerdictInclude, Reason: "satisfies primary topic and all required criteria"},
		{Key: "a2", Title: "Commas, in, title", Verdict: domain.VerdictExclude, Reason: "excluded document type"},
	}

	if err := NewWriter(&buf).WriteAll(context.Background(), decisions); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Key,Title,Decision,Reason" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "a1,") || !strings.Contains(lines[1], "Include") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Commas, in, title"`) {
		t.Fatalf("comma title not quoted: %q", lines[2])
	}
}

func TestFileWriterWriteAll(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	decisions := []domain.Decision{
		{Key: "a1", Title: "T", Verdict: domain.VerdictExclude, Reason: "not primary topic / primary topic is a different category"},
	}

	if err := NewFileWriter(path).WriteAll(context.Background(), decisions); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(raw), "Key,Title,Decision,Reason\n") {
		t.Fatalf("unexpected file contents: %q", raw)
	}
}
