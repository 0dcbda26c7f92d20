package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"BibScreen/internal/domain"
)

type stubSource struct {
	records []domain.ArticleRecord
}

func (s *stubSource) Load(context.Context) ([]domain.ArticleRecord, error) {
	return s.records, nil
}

type stubScreener struct{}

func (stubScreener) Screen(rec domain.ArticleRecord) domain.Decision {
	verdict := domain.VerdictExclude
	if strings.Contains(rec.Title, "keep") {
		verdict = domain.VerdictInclude
	}
	return domain.Decision{Key: rec.Key, Title: rec.Title, Verdict: verdict, Reason: "stub"}
}

type captureWriter struct {
	decisions []domain.Decision
}

func (w *captureWriter) WriteAll(_ context.Context, decisions []domain.Decision) error {
	w.decisions = decisions
	return nil
}

type memoryRepo struct {
	mu    sync.Mutex
	saved []string
}

func (r *memoryRepo) AlreadyScreened(_ context.Context, keys []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (r *memoryRepo) SaveDecision(_ context.Context, d domain.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, d.Key)
	return nil
}

func TestPipelinePreservesInputOrder(t *testing.T) {
	t.Parallel()

	const n = 200
	records := make([]domain.ArticleRecord, n)
	for i := range records {
		records[i] = domain.ArticleRecord{Key: fmt.Sprintf("k%03d", i), Title: "keep"}
	}

	writer := &captureWriter{}
	p := NewPipeline(PipelineDeps{
		Source:   &stubSource{records: records},
		Screener: stubScreener{},
		Writer:   writer,
		Workers:  8,
	})

	decisions, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(decisions) != n {
		t.Fatalf("expected %d decisions, got %d", n, len(decisions))
	}
	for i, d := range decisions {
		if d.Key != records[i].Key {
			t.Fatalf("decision %d out of order: %s", i, d.Key)
		}
	}
	if len(writer.decisions) != n {
		t.Fatalf("writer received %d decisions", len(writer.decisions))
	}
}

func TestPipelinePersistsAllDecisions(t *testing.T) {
	t.Parallel()

	records := []domain.ArticleRecord{
		{Key: "a", Title: "keep"},
		{Key: "b", Title: "drop"},
	}
	repo := &memoryRepo{}
	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{records: records},
		Screener:   stubScreener{},
		Repository: repo,
	})

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(repo.saved) != 2 || repo.saved[0] != "a" || repo.saved[1] != "b" {
		t.Fatalf("saved keys = %v", repo.saved)
	}
}

func TestPipelineRequiresSourceAndScreener(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{})
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatalf("expected misconfiguration error")
	}
}
