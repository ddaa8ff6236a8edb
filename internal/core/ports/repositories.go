package ports

import (
	"context"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepository defines persistence for player wagering state.
// Methods accepting pgx.Tx run inside transaction blocks for
// pessimistic locking.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	// GetByIDForUpdate locks the player row. The player row is always
	// the first lock a bet transaction takes, so lock ordering stays
	// consistent across engines.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error
	UpdatePoints(ctx context.Context, tx pgx.Tx, id uuid.UUID, points int64) error
	UpdateTickets(ctx context.Context, tx pgx.Tx, id uuid.UUID, tickets int64) error
	SetLastFreeSpin(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
}

// BankrollRepository defines persistence for the shared liquidity pool.
// There is exactly one bankroll row; settlements lock it.
type BankrollRepository interface {
	// Seed inserts the bankroll row if it does not exist yet.
	Seed(ctx context.Context, bankroll *domain.Bankroll) error
	Get(ctx context.Context) (*domain.Bankroll, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Bankroll, error)
	Save(ctx context.Context, tx pgx.Tx, bankroll *domain.Bankroll) error
}

// RoundRepository defines persistence for wager rounds.
type RoundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, round *domain.Round) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	// GetActiveByPlayer returns the player's PLAYING round for a game,
	// or nil. The ForUpdate variant locks it for state transitions.
	GetActiveByPlayer(ctx context.Context, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error)
	GetActiveByPlayerForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error)
	Update(ctx context.Context, tx pgx.Tx, round *domain.Round) error
}

// CatalogRepository defines persistence for the admin-authored slot
// symbol and wheel segment catalogs. Engines read them at round-start
// time and never cache across rounds.
type CatalogRepository interface {
	ListSlotSymbols(ctx context.Context) ([]domain.SlotSymbol, error)
	ReplaceSlotSymbols(ctx context.Context, symbols []domain.SlotSymbol) error
	ListWheelSegments(ctx context.Context) ([]domain.WheelSegment, error)
	ReplaceWheelSegments(ctx context.Context, segments []domain.WheelSegment) error
	// DecrementWheelRemaining burns one award from a limited segment.
	DecrementWheelRemaining(ctx context.Context, tx pgx.Tx, segmentID int) error
}

// BetLogRepository defines persistence for bet-commit idempotency logs
// (DB backup behind the Redis fast path).
type BetLogRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.BetLog) error
	Get(ctx context.Context, key string) (*domain.BetLog, error)
}

// JournalRepository records immutable bankroll ledger entries.
type JournalRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

// BetCache is the Redis-layer idempotency check (fast path).
type BetCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
