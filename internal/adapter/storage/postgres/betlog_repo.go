package postgres

import (
	"context"
	"errors"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BetLogRepo implements ports.BetLogRepository: the durable layer of
// the two-layer bet idempotency check.
type BetLogRepo struct {
	pool Pool
}

// NewBetLogRepo creates a new BetLogRepo.
func NewBetLogRepo(pool Pool) *BetLogRepo {
	return &BetLogRepo{pool: pool}
}

// Create inserts a bet log within a database transaction.
func (r *BetLogRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.BetLog) error {
	query := `INSERT INTO bet_logs (key, round_id, response_json, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, log.Key, log.RoundID, log.ResponseJSON, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bet log: %w", err)
	}
	return nil
}

// Get fetches a bet log by key.
func (r *BetLogRepo) Get(ctx context.Context, key string) (*domain.BetLog, error) {
	query := `SELECT key, round_id, response_json, created_at FROM bet_logs WHERE key = $1`

	log := &domain.BetLog{}
	err := r.pool.QueryRow(ctx, query, key).Scan(&log.Key, &log.RoundID, &log.ResponseJSON, &log.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bet log: %w", err)
	}
	return log, nil
}
