package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player holds the wagering-side state for one bettor. Identity lives
// with the external identity collaborator; this row carries only the
// spendable balance, reward points and wheel eligibility.
type Player struct {
	ID           uuid.UUID  `json:"id"`
	Balance      int64      `json:"balance"` // centavos
	Points       int64      `json:"points"`
	Tickets      int64      `json:"tickets"` // raffle entries won on the wheel
	LastFreeSpin *time.Time `json:"last_free_spin,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FreeSpinWindow is the rolling window between free wheel spins.
const FreeSpinWindow = 24 * time.Hour

// FreeSpinAvailable reports whether the daily free wheel spin has
// recharged: never spun, or at least 24h since the last one.
func (p *Player) FreeSpinAvailable(now time.Time) bool {
	return p.LastFreeSpin == nil || now.Sub(*p.LastFreeSpin) >= FreeSpinWindow
}
