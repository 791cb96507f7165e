// Package pipeline implements the settlement computation pipeline: row
// filtering, column projection, the per-order settlement formula, and the
// one-pass aggregation that produces the summary snapshot.
//
// All state lives on a Session; loading a new export replaces the previous
// session wholesale. There is no package-level mutable state.
package pipeline

import (
	"fmt"

	"payout/internal/core"
)

// Session owns one loaded record set and its effective field order.
type Session struct {
	Headers []string
	Records []core.Record
}

func init() {
	if err := verifyFieldLayout(); err != nil {
		panic(err)
	}
}

// verifyFieldLayout checks the column-order invariant the settlement formula
// depends on: the commission base field exists in the retained columns and
// sits exactly three positions before Order Amount. The commission base is
// resolved by name at compute time, so a reordering would otherwise go
// unnoticed and silently change the fee base.
func verifyFieldLayout() error {
	baseIdx, amountIdx := -1, -1
	for i, f := range core.KeepFields {
		switch f {
		case core.FieldCommissionBase:
			baseIdx = i
		case core.FieldOrderAmount:
			amountIdx = i
		}
	}
	if baseIdx < 0 {
		return fmt.Errorf("retained columns missing %q", core.FieldCommissionBase)
	}
	if amountIdx < 0 {
		return fmt.Errorf("retained columns missing %q", core.FieldOrderAmount)
	}
	if amountIdx-baseIdx != 3 {
		return fmt.Errorf("%q at position %d, %q at position %d: expected distance 3",
			core.FieldCommissionBase, baseIdx, core.FieldOrderAmount, amountIdx)
	}
	return nil
}

// NewSession wraps a freshly loaded record set. Headers come from the
// export's first row; Clean replaces them with the retained column set.
func NewSession(headers []string, records []core.Record) *Session {
	return &Session{
		Headers: headers,
		Records: records,
	}
}

// Run executes the full pipeline on the session and returns the summary.
func (s *Session) Run() core.Summary {
	s.Clean()
	s.ComputeSettlements()
	return s.Summarize()
}
