package domain

// PrizeType classifies what a wheel segment awards.
type PrizeType string

const (
	PrizePoints     PrizeType = "POINTS"
	PrizeCash       PrizeType = "CASH"
	PrizeFreeTicket PrizeType = "FREE_TICKET"
	PrizeNothing    PrizeType = "NOTHING"
)

// WheelSegment is one slice of the prize wheel. Remaining is the
// operator's per-segment exposure control: it decrements on every
// award and is replenished by admin action, not by the engine.
// DailyLimit == 0 means the segment is unlimited.
type WheelSegment struct {
	ID         int       `json:"id"`
	Label      string    `json:"label"`
	PrizeType  PrizeType `json:"prize_type"`
	Value      int64     `json:"value"` // centavos for CASH, count otherwise
	DailyLimit int       `json:"daily_limit"`
	Remaining  int       `json:"remaining"`
}

// DefaultWheelSegments is the wheel installed at first startup, kept
// deliberately modest until the operator configures the real one.
func DefaultWheelSegments() []WheelSegment {
	return []WheelSegment{
		{ID: 1, Label: "Better luck next time", PrizeType: PrizeNothing},
		{ID: 2, Label: "25 Points", PrizeType: PrizePoints, Value: 25},
		{ID: 3, Label: "50 Points", PrizeType: PrizePoints, Value: 50},
		{ID: 4, Label: "100 Points", PrizeType: PrizePoints, Value: 100},
		{ID: 5, Label: "R$1 Cash", PrizeType: PrizeCash, Value: 100, DailyLimit: 50, Remaining: 50},
		{ID: 6, Label: "R$5 Cash", PrizeType: PrizeCash, Value: 500, DailyLimit: 10, Remaining: 10},
		{ID: 7, Label: "Raffle Ticket", PrizeType: PrizeFreeTicket, Value: 1, DailyLimit: 25, Remaining: 25},
		{ID: 8, Label: "Better luck next time", PrizeType: PrizeNothing},
	}
}

// Available reports whether the segment can still be awarded.
func (s *WheelSegment) Available() bool {
	return s.DailyLimit == 0 || s.Remaining > 0
}

// EligibleSegments filters a catalog down to awardable segments.
func EligibleSegments(segments []WheelSegment) []WheelSegment {
	var out []WheelSegment
	for _, s := range segments {
		if s.Available() {
			out = append(out, s)
		}
	}
	return out
}
