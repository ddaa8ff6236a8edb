package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerDirection classifies a journal entry against the bankroll.
type LedgerDirection string

const (
	// LedgerReserve: a stake entering the pool at bet commit.
	LedgerReserve LedgerDirection = "RESERVE"
	// LedgerSettle: a payout leaving the pool at settlement.
	LedgerSettle LedgerDirection = "SETTLE"
	// LedgerTopup: an operator replenishment.
	LedgerTopup LedgerDirection = "TOPUP"
)

// LedgerEntry is one immutable line of the bankroll journal. The sum of
// reserves minus settles, plus topups, reproduces the pool's liquidity
// from its seed value — the reconciliation invariant the operator
// audits against.
type LedgerEntry struct {
	ID             uuid.UUID       `json:"id"`
	RoundID        *uuid.UUID      `json:"round_id,omitempty"` // nil for topups
	Game           GameKind        `json:"game,omitempty"`
	Direction      LedgerDirection `json:"direction"`
	Amount         int64           `json:"amount"` // centavos, always positive
	LiquidityAfter int64           `json:"liquidity_after"`
	CreatedAt      time.Time       `json:"created_at"`
}
