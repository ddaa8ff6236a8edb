package domain

import "math"

// Slot grid dimensions: 3x3, stored row-major.
const (
	SlotRows  = 3
	SlotCols  = 3
	SlotCells = SlotRows * SlotCols
)

// BigWinThreshold flags wins worth a heightened presentation.
const BigWinThreshold = 10 // x stake

// SlotSymbol is one entry of the admin-authored symbol catalog.
// Frequency is advisory: the engine derives the sampling weight from
// the multiplier (see DeriveWeight) so an inconsistent catalog cannot
// break the house edge.
type SlotSymbol struct {
	ID         string  `json:"id"`
	Icon       string  `json:"icon"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Frequency  int     `json:"frequency"`
}

// DeriveWeight maps a payout multiplier to a sampling weight with the
// fixed inverse formula max(1, round(100 / multiplier)). High-paying
// symbols come out rare; the relationship is enforced here rather than
// trusted from the independently edited Frequency field.
func DeriveWeight(multiplier float64) int {
	if multiplier <= 0 {
		return 1
	}
	w := int(math.Round(100 / multiplier))
	if w < 1 {
		return 1
	}
	return w
}

// NormalizeSlotWeights overwrites each symbol's Frequency with the
// weight derived from its multiplier. Draw code calls this so stored
// frequencies are never trusted directly.
func NormalizeSlotWeights(symbols []SlotSymbol) []SlotSymbol {
	out := make([]SlotSymbol, len(symbols))
	for i, sym := range symbols {
		sym.Frequency = DeriveWeight(sym.Multiplier)
		out[i] = sym
	}
	return out
}

// DefaultSlotSymbols is the catalog installed at first startup. The
// operator replaces it through the admin surface; weights are derived
// from the multipliers either way.
func DefaultSlotSymbols() []SlotSymbol {
	return NormalizeSlotWeights([]SlotSymbol{
		{ID: "cherry", Icon: "🍒", Label: "Cherry", Multiplier: 2},
		{ID: "lemon", Icon: "🍋", Label: "Lemon", Multiplier: 3},
		{ID: "grape", Icon: "🍇", Label: "Grape", Multiplier: 5},
		{ID: "bell", Icon: "🔔", Label: "Bell", Multiplier: 10},
		{ID: "diamond", Icon: "💎", Label: "Diamond", Multiplier: 25},
		{ID: "seven", Icon: "7️⃣", Label: "Lucky Seven", Multiplier: 100},
	})
}

// Payline indices into a row-major 3x3 grid. Exactly five lines pay:
// the three rows, the main diagonal, and the anti-diagonal.
var SlotPaylines = [5][3]int{
	{0, 1, 2}, // row 0
	{3, 4, 5}, // row 1
	{6, 7, 8}, // row 2
	{0, 4, 8}, // main diagonal
	{2, 4, 6}, // anti-diagonal
}

// LineWin is one winning payline in a spin.
type LineWin struct {
	Line   int    `json:"line"` // index into SlotPaylines
	Symbol string `json:"symbol"`
	Payout int64  `json:"payout"` // centavos
}

// EvaluateSlotGrid scans the five paylines of a row-major grid of
// symbol IDs. A line pays stake x multiplier when all three cells share
// the symbol identity; simultaneous lines pay independently and sum.
func EvaluateSlotGrid(grid []string, stake int64, catalog map[string]SlotSymbol) ([]LineWin, int64) {
	var wins []LineWin
	var total int64

	for i, line := range SlotPaylines {
		a, b, c := grid[line[0]], grid[line[1]], grid[line[2]]
		if a != b || b != c {
			continue
		}
		sym, ok := catalog[a]
		if !ok {
			continue
		}
		payout := int64(math.Round(float64(stake) * sym.Multiplier))
		wins = append(wins, LineWin{Line: i, Symbol: a, Payout: payout})
		total += payout
	}

	return wins, total
}

// IsBigWin reports whether a total win crosses the celebration
// threshold. Cosmetic only — payouts are unaffected.
func IsBigWin(totalWin, stake int64) bool {
	return stake > 0 && totalWin >= BigWinThreshold*stake
}
