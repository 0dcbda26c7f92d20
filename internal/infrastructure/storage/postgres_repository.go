package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"BibScreen/internal/domain"
	"BibScreen/internal/ports"
)

// PostgresRepository persists screening decisions into Postgres for audit
// and re-run bookkeeping.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.DecisionRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AlreadyScreened returns a map with record keys that already have a stored
// decision.
func (r *PostgresRepository) AlreadyScreened(ctx context.Context, keys []string) (map[string]bool, error) {
	if r.db == nil || len(keys) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := r.builder.
		Select("record_key").
		From("screening_decisions").
		Where("record_key = ANY(?)", pq.StringArray(keys)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build screened query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query screened: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		result[key] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return result, nil
}

// SaveDecision upserts the decision snapshot keyed by record key.
func (r *PostgresRepository) SaveDecision(ctx context.Context, decision domain.Decision) error {
	if r.db == nil {
		return nil
	}

	query, args, err := r.builder.
		Insert("screening_decisions").
		Columns("record_key", "title", "verdict", "reason").
		Values(decision.Key, decision.Title, string(decision.Verdict), decision.Reason).
		Suffix(`ON CONFLICT (record_key) DO UPDATE
              SET title = EXCLUDED.title,
                  verdict = EXCLUDED.verdict,
                  reason = EXCLUDED.reason,
                  updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert decision %s: %w", decision.Key, err)
	}
	return nil
}
