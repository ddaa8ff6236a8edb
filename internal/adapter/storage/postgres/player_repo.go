package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepo implements ports.PlayerRepository.
type PlayerRepo struct {
	pool Pool
}

// NewPlayerRepo creates a new PlayerRepo.
func NewPlayerRepo(pool Pool) *PlayerRepo {
	return &PlayerRepo{pool: pool}
}

// Create inserts a new player into the database.
func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, balance, points, tickets, last_free_spin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Balance, p.Points, p.Tickets, p.LastFreeSpin, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// GetByID fetches a player by UUID (without locking).
func (r *PlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT id, balance, points, tickets, last_free_spin, created_at, updated_at
		FROM players WHERE id = $1`

	p := &domain.Player{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Balance, &p.Points, &p.Tickets, &p.LastFreeSpin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a player with pessimistic locking.
// This MUST be called within a transaction, and the player row is
// always the first lock a bet transaction takes.
func (r *PlayerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT id, balance, points, tickets, last_free_spin, created_at, updated_at
		FROM players WHERE id = $1 FOR UPDATE`

	p := &domain.Player{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Balance, &p.Points, &p.Tickets, &p.LastFreeSpin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player for update: %w", err)
	}
	return p, nil
}

// UpdateBalance updates a player's balance within a transaction.
func (r *PlayerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error {
	query := `UPDATE players SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update player balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %s", id)
	}
	return nil
}

// UpdatePoints updates a player's reward points within a transaction.
func (r *PlayerRepo) UpdatePoints(ctx context.Context, tx pgx.Tx, id uuid.UUID, points int64) error {
	query := `UPDATE players SET points = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, points, id)
	if err != nil {
		return fmt.Errorf("update player points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %s", id)
	}
	return nil
}

// UpdateTickets updates a player's raffle ticket count within a transaction.
func (r *PlayerRepo) UpdateTickets(ctx context.Context, tx pgx.Tx, id uuid.UUID, tickets int64) error {
	query := `UPDATE players SET tickets = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, tickets, id)
	if err != nil {
		return fmt.Errorf("update player tickets: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %s", id)
	}
	return nil
}

// SetLastFreeSpin stamps the free-spin window within a transaction.
func (r *PlayerRepo) SetLastFreeSpin(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	query := `UPDATE players SET last_free_spin = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("set last free spin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %s", id)
	}
	return nil
}
