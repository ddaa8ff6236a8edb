package ports

import (
	"context"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
)

// OutcomeStream yields deterministic draws from a seed pair. The same
// seeds always produce the same sequence, which is what makes rounds
// verifiable after seed disclosure.
type OutcomeStream interface {
	// Intn returns a draw in [0, n) and advances the cursor.
	Intn(n int) int
	// SampleDistinct returns k distinct values in [0, n), sorted.
	SampleDistinct(n, k int) []int
	// Cursor reports how many draws were consumed.
	Cursor() int
}

// Commitment is a fresh server seed plus its published hash.
type Commitment struct {
	ServerSeed     string // hex, disclosed only after settlement
	ServerSeedHash string // sha256(serverSeed), shown at round start
}

// FairnessService implements the commit-reveal scheme shared by all
// engines.
type FairnessService interface {
	NewCommitment() (Commitment, error)
	Stream(serverSeed, clientSeed string) OutcomeStream
	// VerifyRound recomputes a settled round's outcome from its
	// disclosed seeds and reports whether it matches.
	VerifyRound(ctx context.Context, roundID uuid.UUID) (*VerifyResult, error)
}

// VerifyResult is the public fairness proof for a settled round.
type VerifyResult struct {
	RoundID        uuid.UUID       `json:"round_id"`
	Game           domain.GameKind `json:"game"`
	ServerSeed     string          `json:"server_seed"`
	ServerSeedHash string          `json:"server_seed_hash"`
	ClientSeed     string          `json:"client_seed"`
	Outcome        []int           `json:"outcome"`
	Valid          bool            `json:"valid"`
}

// StartMinesRequest begins a mines round.
type StartMinesRequest struct {
	PlayerID    uuid.UUID
	Stake       int64
	MineCount   int
	ClientSeed  string
	ReferenceID string
}

// MinesRoundResult is the state snapshot returned by every mines
// operation. MinePositions is populated only for terminal rounds.
type MinesRoundResult struct {
	RoundID        uuid.UUID         `json:"round_id"`
	State          domain.RoundState `json:"state"`
	Stake          int64             `json:"stake"`
	MineCount      int               `json:"mine_count"`
	Revealed       []int             `json:"revealed"`
	Multiplier     float64           `json:"multiplier"`
	PotentialWin   int64             `json:"potential_win"`
	Payout         int64             `json:"payout"`
	Forced         bool              `json:"forced"`
	Balance        int64             `json:"balance"`
	ServerSeedHash string            `json:"server_seed_hash"`
	ServerSeed     string            `json:"server_seed,omitempty"`
	MinePositions  []int             `json:"mine_positions,omitempty"`
	Idempotent     bool              `json:"-"`
}

// MinesService runs the 25-cell mines state machine.
type MinesService interface {
	Start(ctx context.Context, req StartMinesRequest) (*MinesRoundResult, error)
	Reveal(ctx context.Context, playerID uuid.UUID, cell int) (*MinesRoundResult, error)
	CashOut(ctx context.Context, playerID uuid.UUID) (*MinesRoundResult, error)
	// Active returns the player's in-flight round, if any, so a client
	// can resume after a disconnect.
	Active(ctx context.Context, playerID uuid.UUID) (*MinesRoundResult, error)
}

// SpinRequest places a slot spin bet.
type SpinRequest struct {
	PlayerID    uuid.UUID
	Stake       int64
	Turbo       bool
	ClientSeed  string
	ReferenceID string
}

// SpinResult reports one settled slot spin.
type SpinResult struct {
	RoundID        uuid.UUID        `json:"round_id"`
	Grid           []string         `json:"grid"` // 9 symbol IDs, row-major
	LineWins       []domain.LineWin `json:"line_wins"`
	TotalPayout    int64            `json:"total_payout"`
	BigWin         bool             `json:"big_win"`
	Balance        int64            `json:"balance"`
	AutoPlayOK     bool             `json:"auto_play_ok"`
	RevealDelayMS  int              `json:"reveal_delay_ms"`
	ServerSeedHash string           `json:"server_seed_hash"`
	ServerSeed     string           `json:"server_seed"`
	Idempotent     bool             `json:"-"`
}

// SlotsService runs the 3x3 weighted-reel engine.
type SlotsService interface {
	Spin(ctx context.Context, req SpinRequest) (*SpinResult, error)
	Symbols(ctx context.Context) ([]domain.SlotSymbol, error)
}

// WheelSpinRequest asks for one wheel spin. Paid=false claims the
// daily free spin and fails if it has not recharged; Paid=true buys an
// extra spin at the configured price.
type WheelSpinRequest struct {
	PlayerID    uuid.UUID
	Paid        bool
	ClientSeed  string
	ReferenceID string
}

// WheelSpinResult reports one wheel spin award.
type WheelSpinResult struct {
	RoundID        uuid.UUID           `json:"round_id"`
	Segment        domain.WheelSegment `json:"segment"`
	Free           bool                `json:"free"`
	Balance        int64               `json:"balance"`
	Points         int64               `json:"points"`
	Tickets        int64               `json:"tickets"`
	NextFreeSpin   time.Time           `json:"next_free_spin"`
	ServerSeedHash string              `json:"server_seed_hash"`
	ServerSeed     string              `json:"server_seed"`
	Idempotent     bool                `json:"-"`
}

// WheelState is the player-facing wheel snapshot.
type WheelState struct {
	Segments      []domain.WheelSegment `json:"segments"`
	FreeAvailable bool                  `json:"free_available"`
	NextFreeSpin  time.Time             `json:"next_free_spin"`
	SpinPrice     int64                 `json:"spin_price"`
}

// WheelService runs the daily prize wheel.
type WheelService interface {
	Spin(ctx context.Context, req WheelSpinRequest) (*WheelSpinResult, error)
	State(ctx context.Context, playerID uuid.UUID) (*WheelState, error)
}

// BankrollStatus is the operator view of the liquidity pool.
type BankrollStatus struct {
	AvailableLiquidity int64                `json:"available_liquidity"`
	PayoutEnabled      bool                 `json:"payout_enabled"`
	MaxSinglePayout    int64                `json:"max_single_payout"`
	UpdatedAt          time.Time            `json:"updated_at"`
	RecentEntries      []domain.LedgerEntry `json:"recent_entries"`
}

// BankrollService covers wallet reads and the operator controls.
type BankrollService interface {
	Status(ctx context.Context) (*BankrollStatus, error)
	SetPayoutEnabled(ctx context.Context, enabled bool) error
	Topup(ctx context.Context, amount int64) (*BankrollStatus, error)
	SetMaxSinglePayout(ctx context.Context, cap int64) error
	Balance(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	CreatePlayer(ctx context.Context, initialBalance int64) (*domain.Player, error)
	CreditPlayer(ctx context.Context, playerID uuid.UUID, amount int64) (*domain.Player, error)
	ReplaceSlotSymbols(ctx context.Context, symbols []domain.SlotSymbol) error
	ReplaceWheelSegments(ctx context.Context, segments []domain.WheelSegment) error
}

// TokenClaims carries the authenticated player identity.
type TokenClaims struct {
	PlayerID uuid.UUID
}

// TokenService validates player session tokens. Issuance lives with
// the identity provider; Generate exists for tooling and tests.
type TokenService interface {
	Generate(playerID uuid.UUID) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// HashService verifies operator keys against stored hashes.
type HashService interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key within a window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
