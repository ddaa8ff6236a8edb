package domain

import "math"

// MinesGridSize is the fixed 5x5 board.
const MinesGridSize = 25

// Mine count bounds: 0 would make the game riskless, 25 unwinnable.
const (
	MinMineCount = 1
	MaxMineCount = 24
)

// ClampMineCount forces a requested mine count into [1, 24].
func ClampMineCount(n int) int {
	if n < MinMineCount {
		return MinMineCount
	}
	if n > MaxMineCount {
		return MaxMineCount
	}
	return n
}

// Combinations computes C(n, k) as a float64. Iterative form keeps
// intermediate values small enough for the 25-cell board.
func Combinations(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n/2 {
		k = n - k
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-i+1) / float64(i)
	}
	return res
}

// MinesMultiplier returns the accrued multiplier after revealing k safe
// cells with m mines on the board:
//
//	houseEdge / P(k safe reveals) = houseEdge * C(25, k) / C(25-m, k)
//
// where P is the hypergeometric probability of opening k cells without
// hitting a mine. Always recomputed from scratch off (k, m) — never
// accumulated by per-step multiplication, which would drift.
// Rounded to 2 decimals, the precision shown to the bettor.
func MinesMultiplier(houseEdge float64, revealed, mines int) float64 {
	if revealed == 0 {
		return 1.0
	}
	prob := Combinations(MinesGridSize-mines, revealed) / Combinations(MinesGridSize, revealed)
	return math.Round(houseEdge/prob*100) / 100
}

// MinesPayout converts a stake and multiplier into centavos.
func MinesPayout(stake int64, multiplier float64) int64 {
	return int64(math.Round(float64(stake) * multiplier))
}
