package postgres

import (
	"context"
	"errors"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BankrollRepo implements ports.BankrollRepository. The pool lives in a
// single row; ON CONFLICT DO NOTHING makes seeding idempotent.
type BankrollRepo struct {
	pool Pool
}

// NewBankrollRepo creates a new BankrollRepo.
func NewBankrollRepo(pool Pool) *BankrollRepo {
	return &BankrollRepo{pool: pool}
}

// Seed inserts the bankroll row if it does not exist yet.
func (r *BankrollRepo) Seed(ctx context.Context, b *domain.Bankroll) error {
	query := `INSERT INTO bankroll (id, available_liquidity, payout_enabled, max_single_payout, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		b.AvailableLiquidity, b.PayoutEnabled, b.MaxSinglePayout, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("seed bankroll: %w", err)
	}
	return nil
}

// Get fetches the bankroll row (without locking).
func (r *BankrollRepo) Get(ctx context.Context) (*domain.Bankroll, error) {
	query := `SELECT available_liquidity, payout_enabled, max_single_payout, updated_at
		FROM bankroll WHERE id = 1`

	b := &domain.Bankroll{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&b.AvailableLiquidity, &b.PayoutEnabled, &b.MaxSinglePayout, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bankroll row missing, seed it at startup")
		}
		return nil, fmt.Errorf("get bankroll: %w", err)
	}
	return b, nil
}

// GetForUpdate fetches the bankroll row with pessimistic locking.
// This MUST be called within a transaction; it serializes every
// settlement against the pool.
func (r *BankrollRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Bankroll, error) {
	query := `SELECT available_liquidity, payout_enabled, max_single_payout, updated_at
		FROM bankroll WHERE id = 1 FOR UPDATE`

	b := &domain.Bankroll{}
	err := tx.QueryRow(ctx, query).Scan(
		&b.AvailableLiquidity, &b.PayoutEnabled, &b.MaxSinglePayout, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bankroll row missing, seed it at startup")
		}
		return nil, fmt.Errorf("get bankroll for update: %w", err)
	}
	return b, nil
}

// Save writes the bankroll row back within a transaction.
func (r *BankrollRepo) Save(ctx context.Context, tx pgx.Tx, b *domain.Bankroll) error {
	query := `UPDATE bankroll SET available_liquidity = $1, payout_enabled = $2,
		max_single_payout = $3, updated_at = NOW() WHERE id = 1`

	tag, err := tx.Exec(ctx, query, b.AvailableLiquidity, b.PayoutEnabled, b.MaxSinglePayout)
	if err != nil {
		return fmt.Errorf("save bankroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bankroll row missing, seed it at startup")
	}
	return nil
}
