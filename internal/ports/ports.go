package ports

import (
	"context"

	"BibScreen/internal/domain"
)

// RecordSource produces the ordered candidate corpus to screen.
type RecordSource interface {
	Load(ctx context.Context) ([]domain.ArticleRecord, error)
}

// Screener turns one record into a terminal decision. Implementations must
// be deterministic and side-effect-free.
type Screener interface {
	Screen(rec domain.ArticleRecord) domain.Decision
}

// DecisionWriter exports the ordered decision sequence (CSV, stdout, ...).
type DecisionWriter interface {
	WriteAll(ctx context.Context, decisions []domain.Decision) error
}

// DecisionRepository persists decisions for audit and re-run bookkeeping.
type DecisionRepository interface {
	AlreadyScreened(ctx context.Context, keys []string) (map[string]bool, error)
	SaveDecision(ctx context.Context, decision domain.Decision) error
}
