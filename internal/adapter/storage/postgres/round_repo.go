package postgres

import (
	"context"
	"errors"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roundColumns = `id, player_id, game, state, stake, reference_id,
	server_seed, server_seed_hash, client_seed,
	mine_count, mine_positions, revealed, multiplier, potential_win,
	grid, catalog, payout, forced, created_at, settled_at`

// RoundRepo implements ports.RoundRepository.
type RoundRepo struct {
	pool Pool
}

// NewRoundRepo creates a new RoundRepo.
func NewRoundRepo(pool Pool) *RoundRepo {
	return &RoundRepo{pool: pool}
}

// Create inserts a round within a transaction. The partial unique
// index on (player_id, game, state=PLAYING) backs the one-live-round
// rule at the storage layer.
func (r *RoundRepo) Create(ctx context.Context, tx pgx.Tx, round *domain.Round) error {
	query := `INSERT INTO rounds (` + roundColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := tx.Exec(ctx, query,
		round.ID, round.PlayerID, round.Game, round.State, round.Stake, round.ReferenceID,
		round.ServerSeed, round.ServerSeedHash, round.ClientSeed,
		round.MineCount, round.MinePositions, round.Revealed, round.Multiplier, round.PotentialWin,
		round.Grid, round.Catalog, round.Payout, round.Forced, round.CreatedAt, round.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// GetByID fetches a round by UUID (without locking).
func (r *RoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`

	round, err := scanRound(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get round by id: %w", err)
	}
	return round, nil
}

// GetActiveByPlayer fetches the player's PLAYING round for a game, or
// nil (non-locking read).
func (r *RoundRepo) GetActiveByPlayer(ctx context.Context, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds
		WHERE player_id = $1 AND game = $2 AND state = 'PLAYING'`

	round, err := scanRound(r.pool.QueryRow(ctx, query, playerID, game))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active round: %w", err)
	}
	return round, nil
}

// GetActiveByPlayerForUpdate fetches the player's PLAYING round with
// pessimistic locking. This MUST be called within a transaction.
func (r *RoundRepo) GetActiveByPlayerForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds
		WHERE player_id = $1 AND game = $2 AND state = 'PLAYING' FOR UPDATE`

	round, err := scanRound(tx.QueryRow(ctx, query, playerID, game))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active round for update: %w", err)
	}
	return round, nil
}

// Update writes a round's mutable state back within a transaction.
func (r *RoundRepo) Update(ctx context.Context, tx pgx.Tx, round *domain.Round) error {
	query := `UPDATE rounds SET state = $1, revealed = $2, multiplier = $3,
		potential_win = $4, payout = $5, forced = $6, settled_at = $7
		WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		round.State, round.Revealed, round.Multiplier,
		round.PotentialWin, round.Payout, round.Forced, round.SettledAt,
		round.ID,
	)
	if err != nil {
		return fmt.Errorf("update round: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("round not found: %s", round.ID)
	}
	return nil
}

func scanRound(row pgx.Row) (*domain.Round, error) {
	round := &domain.Round{}
	err := row.Scan(
		&round.ID, &round.PlayerID, &round.Game, &round.State, &round.Stake, &round.ReferenceID,
		&round.ServerSeed, &round.ServerSeedHash, &round.ClientSeed,
		&round.MineCount, &round.MinePositions, &round.Revealed, &round.Multiplier, &round.PotentialWin,
		&round.Grid, &round.Catalog, &round.Payout, &round.Forced, &round.CreatedAt, &round.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return round, nil
}
