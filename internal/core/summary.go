package core

import "math"

// Summary is the snapshot derived from one pass over a cleaned record set.
// It is recomputed from scratch on every query, never cached.
type Summary struct {
	Total      float64 // sum of all settlement amounts
	Settled    float64 // settlement sum over completed orders
	NotSettled float64 // settlement sum over everything else

	InTransit int
	Completed int
	Delivered int

	TotalQuantity float64

	// VariationNames preserves first-seen order for rendering;
	// VariationCounts holds the occurrence count per name.
	VariationNames  []string
	VariationCounts map[string]int
}

// NetBreakdown merges the settled total with the expense ledger.
type NetBreakdown struct {
	Settled  float64
	Expenses float64
	Net      float64
}

func NewNetBreakdown(settled, expenses float64) NetBreakdown {
	return NetBreakdown{
		Settled:  settled,
		Expenses: expenses,
		Net:      settled - expenses,
	}
}

// Surplus reports whether the net figure is non-negative. The sign is
// carried separately from the displayed magnitude.
func (n NetBreakdown) Surplus() bool {
	return n.Net >= 0
}

// Magnitude returns the unsigned net figure for display.
func (n NetBreakdown) Magnitude() float64 {
	return math.Abs(n.Net)
}
