package domain

import (
	"time"

	"github.com/google/uuid"
)

// BetLog is a persisted bet-commit result keyed by the caller-supplied
// reference ID. It guarantees the one-deduction invariant: replaying a
// commit returns the stored response instead of reserving the stake a
// second time.
type BetLog struct {
	Key          string    `json:"key"` // BuildBetKey format
	RoundID      uuid.UUID `json:"round_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}
