package domain

import "time"

// Bankroll is the shared liquidity pool every wagering game draws from
// and pays into. A single row holds it; settlements load it FOR UPDATE
// so all mutation happens under the row lock.
type Bankroll struct {
	AvailableLiquidity int64     `json:"available_liquidity"` // centavos
	PayoutEnabled      bool      `json:"payout_enabled"`
	MaxSinglePayout    int64     `json:"max_single_payout"` // centavos
	UpdatedAt          time.Time `json:"updated_at"`
}

// CanAfford reports whether a stake is acceptable: payouts must be
// enabled and the bettor must hold at least the stake. The bettor
// balance is external state, passed in by the caller.
func (b *Bankroll) CanAfford(stake, balance int64) bool {
	return b.PayoutEnabled && stake > 0 && stake <= balance
}

// CoversExposure reports whether liquidity carries the pre-bet risk
// margin for a stake (availableLiquidity >= stake * margin).
func (b *Bankroll) CoversExposure(stake int64, margin float64) bool {
	return float64(b.AvailableLiquidity) >= float64(stake)*margin
}

// ReserveStake moves a committed stake into the pool. It never fails:
// affordability was checked under the same row lock.
func (b *Bankroll) ReserveStake(stake int64) {
	b.AvailableLiquidity += stake
}

// AuthorizePayout clamps a computed win to the per-settlement ceiling.
func (b *Bankroll) AuthorizePayout(amount int64) int64 {
	if amount > b.MaxSinglePayout {
		return b.MaxSinglePayout
	}
	return amount
}

// Settle pays out of the pool. Liquidity may go negative if policy was
// violated upstream; callers treat that as an operator alarm, not a
// crash condition.
func (b *Bankroll) Settle(amount int64) {
	b.AvailableLiquidity -= amount
}

// Insolvent reports the alarm condition of a drained pool.
func (b *Bankroll) Insolvent() bool {
	return b.AvailableLiquidity < 0
}
