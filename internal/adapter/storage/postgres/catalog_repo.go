package postgres

import (
	"context"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CatalogRepo implements ports.CatalogRepository. Catalog replacement
// is wholesale: a replace wipes the table and reinserts in order, so
// segment positions stay stable for wheel verification.
type CatalogRepo struct {
	pool Pool
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(pool Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// ListSlotSymbols returns the symbol catalog in stored order.
func (r *CatalogRepo) ListSlotSymbols(ctx context.Context) ([]domain.SlotSymbol, error) {
	query := `SELECT id, icon, label, multiplier, frequency
		FROM slot_symbols ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slot symbols: %w", err)
	}
	defer rows.Close()

	var symbols []domain.SlotSymbol
	for rows.Next() {
		var s domain.SlotSymbol
		if err := rows.Scan(&s.ID, &s.Icon, &s.Label, &s.Multiplier, &s.Frequency); err != nil {
			return nil, fmt.Errorf("scan slot symbol: %w", err)
		}
		symbols = append(symbols, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slot symbols: %w", err)
	}
	return symbols, nil
}

// ReplaceSlotSymbols swaps the whole symbol catalog atomically.
func (r *CatalogRepo) ReplaceSlotSymbols(ctx context.Context, symbols []domain.SlotSymbol) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM slot_symbols`); err != nil {
		return fmt.Errorf("clear slot symbols: %w", err)
	}
	for i, s := range symbols {
		_, err := tx.Exec(ctx,
			`INSERT INTO slot_symbols (id, icon, label, multiplier, frequency, position)
				VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, s.Icon, s.Label, s.Multiplier, s.Frequency, i,
		)
		if err != nil {
			return fmt.Errorf("insert slot symbol: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	return nil
}

// ListWheelSegments returns the wheel catalog in stored order.
func (r *CatalogRepo) ListWheelSegments(ctx context.Context) ([]domain.WheelSegment, error) {
	query := `SELECT id, label, prize_type, value, daily_limit, remaining
		FROM wheel_segments ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wheel segments: %w", err)
	}
	defer rows.Close()

	var segments []domain.WheelSegment
	for rows.Next() {
		var s domain.WheelSegment
		if err := rows.Scan(&s.ID, &s.Label, &s.PrizeType, &s.Value, &s.DailyLimit, &s.Remaining); err != nil {
			return nil, fmt.Errorf("scan wheel segment: %w", err)
		}
		segments = append(segments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wheel segments: %w", err)
	}
	return segments, nil
}

// ReplaceWheelSegments swaps the whole wheel catalog atomically.
func (r *CatalogRepo) ReplaceWheelSegments(ctx context.Context, segments []domain.WheelSegment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM wheel_segments`); err != nil {
		return fmt.Errorf("clear wheel segments: %w", err)
	}
	for i, s := range segments {
		_, err := tx.Exec(ctx,
			`INSERT INTO wheel_segments (id, label, prize_type, value, daily_limit, remaining, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, s.Label, s.PrizeType, s.Value, s.DailyLimit, s.Remaining, i,
		)
		if err != nil {
			return fmt.Errorf("insert wheel segment: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	return nil
}

// DecrementWheelRemaining burns one award from a limited segment
// within a transaction. Unlimited segments (daily_limit = 0) are never
// passed here.
func (r *CatalogRepo) DecrementWheelRemaining(ctx context.Context, tx pgx.Tx, segmentID int) error {
	query := `UPDATE wheel_segments SET remaining = remaining - 1
		WHERE id = $1 AND remaining > 0`

	tag, err := tx.Exec(ctx, query, segmentID)
	if err != nil {
		return fmt.Errorf("decrement wheel segment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wheel segment %d has no awards remaining", segmentID)
	}
	return nil
}
