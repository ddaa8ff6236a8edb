package postgres

import (
	"context"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// JournalRepo implements ports.JournalRepository. Entries are
// append-only; nothing in the codebase updates or deletes them.
type JournalRepo struct {
	pool Pool
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Append writes a ledger entry within a database transaction.
func (r *JournalRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	query := `INSERT INTO bankroll_ledger (id, round_id, game, direction, amount, liquidity_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.RoundID, entry.Game, entry.Direction,
		entry.Amount, entry.LiquidityAfter, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListRecent returns the newest ledger entries, newest first.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT id, round_id, game, direction, amount, liquidity_after, created_at
		FROM bankroll_ledger ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Game, &e.Direction, &e.Amount, &e.LiquidityAfter, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}
