package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBankroll_CanAfford(t *testing.T) {
	b := &Bankroll{AvailableLiquidity: 100000, PayoutEnabled: true, MaxSinglePayout: 50000}

	assert.True(t, b.CanAfford(100, 500))
	assert.True(t, b.CanAfford(500, 500))
	assert.False(t, b.CanAfford(501, 500))
	assert.False(t, b.CanAfford(0, 500))
	assert.False(t, b.CanAfford(-10, 500))

	b.PayoutEnabled = false
	assert.False(t, b.CanAfford(100, 500), "kill switch blocks all new bets")
}

func TestBankroll_CoversExposure(t *testing.T) {
	b := &Bankroll{AvailableLiquidity: 1500}

	assert.True(t, b.CoversExposure(1000, 1.5))
	assert.False(t, b.CoversExposure(1001, 1.5))
	assert.True(t, b.CoversExposure(1500, 1.0))
}

func TestBankroll_ReserveAndSettle(t *testing.T) {
	b := &Bankroll{AvailableLiquidity: 1000, PayoutEnabled: true, MaxSinglePayout: 50000}

	b.ReserveStake(250)
	assert.Equal(t, int64(1250), b.AvailableLiquidity)

	b.Settle(400)
	assert.Equal(t, int64(850), b.AvailableLiquidity)
	assert.False(t, b.Insolvent())

	// Settling past zero is an alarm, not a crash.
	b.Settle(900)
	assert.Equal(t, int64(-50), b.AvailableLiquidity)
	assert.True(t, b.Insolvent())
}

func TestBankroll_AuthorizePayout(t *testing.T) {
	b := &Bankroll{MaxSinglePayout: 50000}

	assert.Equal(t, int64(49999), b.AuthorizePayout(49999))
	assert.Equal(t, int64(50000), b.AuthorizePayout(50000))
	assert.Equal(t, int64(50000), b.AuthorizePayout(60000), "clamped to the per-settlement cap")
}

func TestPlayer_FreeSpinAvailable(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	p := &Player{ID: uuid.New()}
	assert.True(t, p.FreeSpinAvailable(now), "never spun")

	exactly := now.Add(-FreeSpinWindow)
	p.LastFreeSpin = &exactly
	assert.True(t, p.FreeSpinAvailable(now), "free again at exactly 24h")

	justUnder := now.Add(-FreeSpinWindow + time.Second)
	p.LastFreeSpin = &justUnder
	assert.False(t, p.FreeSpinAvailable(now), "denied under 24h")
}

func TestWheelSegment_Available(t *testing.T) {
	limited := &WheelSegment{DailyLimit: 5, Remaining: 1}
	assert.True(t, limited.Available())

	limited.Remaining = 0
	assert.False(t, limited.Available())

	unlimited := &WheelSegment{DailyLimit: 0, Remaining: 0}
	assert.True(t, unlimited.Available())
}

func TestEligibleSegments(t *testing.T) {
	segments := []WheelSegment{
		{ID: 1, DailyLimit: 3, Remaining: 2},
		{ID: 2, DailyLimit: 3, Remaining: 0},
		{ID: 3, DailyLimit: 0},
	}

	eligible := EligibleSegments(segments)
	assert.Len(t, eligible, 2)
	assert.Equal(t, 1, eligible[0].ID)
	assert.Equal(t, 3, eligible[1].ID)
}

func TestBuildBetKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	key := BuildBetKey(id, GameMines, "ROUND-001")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000:MINES:ROUND-001", key)
}
