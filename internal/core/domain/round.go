package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GameKind identifies which engine owns a round.
type GameKind string

const (
	GameMines GameKind = "MINES"
	GameSlots GameKind = "SLOTS"
	GameWheel GameKind = "WHEEL"
)

// RoundState is the lifecycle of a committed wager. There is no stored
// "betting" state: a round exists only once its stake is committed.
type RoundState string

const (
	RoundStatePlaying RoundState = "PLAYING"
	RoundStateWon     RoundState = "WON"
	RoundStateLost    RoundState = "LOST"
)

// Round is one committed wager: stake, outcome material, and — for
// mines — the live board. The stake is deducted from the player and
// reserved into the bankroll exactly once, at creation.
type Round struct {
	ID          uuid.UUID  `json:"id"`
	PlayerID    uuid.UUID  `json:"player_id"`
	Game        GameKind   `json:"game"`
	State       RoundState `json:"state"`
	Stake       int64      `json:"stake"` // centavos
	ReferenceID string     `json:"reference_id"`

	// Commit-reveal material. ServerSeed is disclosed only after the
	// round reaches a terminal state; ServerSeedHash is shown upfront.
	ServerSeed     string `json:"-"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed"`

	// Mines board. MinePositions is fixed at commit time and never
	// recomputed mid-round; Revealed keeps reveal order.
	MineCount     int   `json:"mine_count,omitempty"`
	MinePositions []int `json:"-"`
	Revealed      []int `json:"revealed,omitempty"`

	// Accrued value. Multiplier starts at 1.0 and is recomputed from
	// scratch on every safe reveal.
	Multiplier   float64 `json:"multiplier,omitempty"`
	PotentialWin int64   `json:"potential_win,omitempty"` // centavos

	// Slot grid, symbol IDs row-major. Empty for other games.
	Grid []string `json:"grid,omitempty"`

	// Catalog pins the slot symbols or wheel segments the outcome was
	// drawn against. Verification replays against this snapshot, so an
	// operator catalog swap cannot invalidate settled rounds.
	Catalog json.RawMessage `json:"-"`

	// Settlement.
	Payout    int64      `json:"payout"` // centavos actually paid
	Forced    bool       `json:"forced"` // settled by cap/liquidity policy, not the player
	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

// IsTerminal returns true once the round is settled.
func (r *Round) IsTerminal() bool {
	return r.State == RoundStateWon || r.State == RoundStateLost
}

// HasRevealed reports whether a mines cell was already opened.
func (r *Round) HasRevealed(cell int) bool {
	for _, c := range r.Revealed {
		if c == cell {
			return true
		}
	}
	return false
}

// HasRevealedAny reports whether at least one cell was opened.
func (r *Round) HasRevealedAny() bool {
	return len(r.Revealed) > 0
}

// IsMine reports whether a cell holds a mine.
func (r *Round) IsMine(cell int) bool {
	for _, m := range r.MinePositions {
		if m == cell {
			return true
		}
	}
	return false
}

// SafeCellsLeft counts unrevealed safe cells on a mines board.
func (r *Round) SafeCellsLeft() int {
	return MinesGridSize - r.MineCount - len(r.Revealed)
}

// BuildBetKey constructs the idempotency key for a bet commit.
// Format: "player_id:game:reference_id".
func BuildBetKey(playerID uuid.UUID, game GameKind, referenceID string) string {
	return playerID.String() + ":" + string(game) + ":" + referenceID
}
