package core

import (
	"errors"
	"math"
	"testing"
)

func TestExpenseValidate(t *testing.T) {
	cases := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{"valid", Expense{Name: "Packaging", Amount: Money{Cents: 5000}}, nil},
		{"empty name", Expense{Name: "   ", Amount: Money{Cents: 100}}, ErrEmptyName},
		{"zero amount", Expense{Name: "Tape", Amount: Money{Cents: 0}}, ErrInvalidAmount},
		{"negative amount", Expense{Name: "Tape", Amount: Money{Cents: -5}}, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.expense.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNetBreakdown(t *testing.T) {
	const tol = 1e-9

	n := NewNetBreakdown(756.90, 50)
	if math.Abs(n.Net-706.90) > tol {
		t.Fatalf("Net = %v, want 706.90", n.Net)
	}
	if !n.Surplus() {
		t.Fatal("expected surplus")
	}
	if math.Abs(n.Magnitude()-706.90) > tol {
		t.Fatalf("Magnitude = %v, want 706.90", n.Magnitude())
	}

	d := NewNetBreakdown(100, 250.5)
	if d.Surplus() {
		t.Fatal("expected deficit")
	}
	if math.Abs(d.Magnitude()-150.5) > tol {
		t.Fatalf("Magnitude = %v, want 150.5", d.Magnitude())
	}
}

func TestKeepFieldsLayout(t *testing.T) {
	// The commission base must sit three positions before Order Amount; the
	// settlement formula depends on this layout.
	var baseIdx, amountIdx int
	for i, f := range KeepFields {
		switch f {
		case FieldCommissionBase:
			baseIdx = i
		case FieldOrderAmount:
			amountIdx = i
		}
	}
	if amountIdx-baseIdx != 3 {
		t.Fatalf("commission base at %d, order amount at %d; want distance 3", baseIdx, amountIdx)
	}
}
