package dto

// StartMinesRequest is the request body for starting a mines round.
type StartMinesRequest struct {
	Stake       int64  `json:"stake" binding:"required,gt=0"`
	MineCount   int    `json:"mine_count" binding:"required,min=1,max=24"`
	ClientSeed  string `json:"client_seed" binding:"omitempty,max=64"`
	ReferenceID string `json:"reference_id" binding:"required,safe_id,max=100"`
}

// RevealRequest is the request body for revealing a mines cell.
// Cell is a pointer so index 0 survives required-binding.
type RevealRequest struct {
	Cell *int `json:"cell" binding:"required,min=0,max=24"`
}

// SlotSpinRequest is the request body for a slot spin.
type SlotSpinRequest struct {
	Stake       int64  `json:"stake" binding:"required,gt=0"`
	Turbo       bool   `json:"turbo"`
	ClientSeed  string `json:"client_seed" binding:"omitempty,max=64"`
	ReferenceID string `json:"reference_id" binding:"required,safe_id,max=100"`
}

// WheelSpinRequest is the request body for a wheel spin. Paid=false
// claims the daily free spin.
type WheelSpinRequest struct {
	Paid        bool   `json:"paid"`
	ClientSeed  string `json:"client_seed" binding:"omitempty,max=64"`
	ReferenceID string `json:"reference_id" binding:"required,safe_id,max=100"`
}

// TopupRequest is the request body for an operator bankroll top-up.
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// PayoutToggleRequest flips the payout kill switch. Enabled is a
// pointer so `false` survives required-binding.
type PayoutToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PayoutCapRequest changes the per-settlement payout ceiling.
type PayoutCapRequest struct {
	MaxSinglePayout int64 `json:"max_single_payout" binding:"required,gt=0"`
}

// CreatePlayerRequest provisions a wallet for a storefront customer.
type CreatePlayerRequest struct {
	InitialBalance int64 `json:"initial_balance" binding:"min=0"`
}

// CreditRequest credits a player wallet from a storefront deposit.
type CreditRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// SlotSymbolRequest is one catalog entry in a symbol replace.
type SlotSymbolRequest struct {
	ID         string  `json:"id" binding:"required,safe_id,max=50"`
	Icon       string  `json:"icon" binding:"max=16"`
	Label      string  `json:"label" binding:"max=100"`
	Multiplier float64 `json:"multiplier" binding:"required,gt=0"`
}

// ReplaceSymbolsRequest swaps the slot symbol catalog.
type ReplaceSymbolsRequest struct {
	Symbols []SlotSymbolRequest `json:"symbols" binding:"required,min=1,dive"`
}

// WheelSegmentRequest is one catalog entry in a segment replace.
type WheelSegmentRequest struct {
	ID         int    `json:"id" binding:"required,gt=0"`
	Label      string `json:"label" binding:"max=100"`
	PrizeType  string `json:"prize_type" binding:"required,oneof=POINTS CASH FREE_TICKET NOTHING"`
	Value      int64  `json:"value" binding:"min=0"`
	DailyLimit int    `json:"daily_limit" binding:"min=0"`
}

// ReplaceSegmentsRequest swaps the wheel segment catalog.
type ReplaceSegmentsRequest struct {
	Segments []WheelSegmentRequest `json:"segments" binding:"required,min=1,dive"`
}

// WalletResponse is the player wallet snapshot.
type WalletResponse struct {
	PlayerID string `json:"player_id"`
	Balance  int64  `json:"balance"`
	Points   int64  `json:"points"`
	Tickets  int64  `json:"tickets"`
}
