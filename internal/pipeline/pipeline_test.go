package pipeline

import (
	"math"
	"testing"

	"payout/internal/core"
)

const tol = 1e-9

func record(kv map[string]string) core.Record {
	r := make(core.Record, len(kv))
	for k, v := range kv {
		r[k] = v
	}
	return r
}

func sampleRecords() []core.Record {
	return []core.Record{
		record(map[string]string{
			core.FieldOrderID:            "577000001",
			core.FieldOrderStatus:        "Shipped",
			core.FieldOrderSubstatus:     "Completed",
			core.FieldVariation:          "Black / M",
			core.FieldQuantity:           "2",
			core.FieldSubtotalAfterDisc:  "900",
			core.FieldOrderAmount:        "1000",
			"Tracking ID":                "PH123", // extra column, must be dropped
		}),
		record(map[string]string{
			core.FieldOrderID:           "577000002",
			core.FieldOrderStatus:       "Cancel",
			core.FieldOrderSubstatus:    "Completed",
			core.FieldVariation:         "Black / M",
			core.FieldQuantity:          "1",
			core.FieldSubtotalAfterDisc: "450",
			core.FieldOrderAmount:       "500",
		}),
		record(map[string]string{
			core.FieldOrderID:           "577000003",
			core.FieldOrderStatus:       "Shipped",
			core.FieldOrderSubstatus:    "In transit",
			core.FieldVariation:         "Red / S",
			core.FieldQuantity:          "1",
			core.FieldSubtotalAfterDisc: "180",
			core.FieldOrderAmount:       "200",
		}),
		record(map[string]string{
			core.FieldOrderID:        "577000004",
			core.FieldOrderStatus:    "Shipped",
			core.FieldOrderSubstatus: "Delivered",
			core.FieldVariation:      "",
			core.FieldQuantity:       "not-a-number",
			core.FieldOrderAmount:    "0",
		}),
	}
}

func headersFrom(recs []core.Record) []string {
	seen := map[string]bool{}
	var hs []string
	for _, r := range recs {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				hs = append(hs, k)
			}
		}
	}
	return hs
}

func TestCleanDropsCancelledOrders(t *testing.T) {
	cases := []struct {
		status string
		kept   bool
	}{
		{"Cancel", false},
		{"canceled", false},
		{" CANCELE ", false},
		{"cancelled", true}, // not one of the export's tokens
		{"Shipped", true},
		{"", true},
	}
	for _, tc := range cases {
		s := NewSession([]string{core.FieldOrderStatus}, []core.Record{
			record(map[string]string{core.FieldOrderStatus: tc.status}),
		})
		s.Clean()
		if kept := len(s.Records) == 1; kept != tc.kept {
			t.Fatalf("status %q: kept=%v, want %v", tc.status, kept, tc.kept)
		}
	}
}

func TestCleanProjectsToRetainedColumns(t *testing.T) {
	recs := sampleRecords()
	s := NewSession(headersFrom(recs), recs)
	s.Clean()

	wantLen := len(core.KeepFields) + 1
	if len(s.Headers) != wantLen {
		t.Fatalf("headers length = %d, want %d", len(s.Headers), wantLen)
	}
	if s.Headers[len(s.Headers)-1] != core.FieldSettlement {
		t.Fatalf("last header = %q, want %q", s.Headers[len(s.Headers)-1], core.FieldSettlement)
	}

	allowed := map[string]bool{core.FieldSettlement: true}
	for _, f := range core.KeepFields {
		allowed[f] = true
	}
	for _, rec := range s.Records {
		for field := range rec {
			if !allowed[field] {
				t.Fatalf("unexpected field %q survived projection", field)
			}
		}
		if rec[core.FieldSettlement] != "0" {
			t.Fatalf("settlement not initialized, got %q", rec[core.FieldSettlement])
		}
	}
}

func TestSettlementFormula(t *testing.T) {
	// 1000 gross, 900 post-discount subtotal:
	// shipping 22.4, commission 65.7, platform discount 55 -> 756.90.
	s := NewSession(nil, []core.Record{
		record(map[string]string{
			core.FieldOrderStatus:       "Shipped",
			core.FieldOrderAmount:       "1000",
			core.FieldSubtotalAfterDisc: "900",
		}),
	})
	s.Clean()
	s.ComputeSettlements()

	if got := s.Records[0][core.FieldSettlement]; got != "756.90" {
		t.Fatalf("settlement = %q, want %q", got, "756.90")
	}
}

func TestSettlementZeroOrderAmount(t *testing.T) {
	cases := []string{"0", "", "not a number"}
	for _, amount := range cases {
		s := NewSession(nil, []core.Record{
			record(map[string]string{
				core.FieldOrderAmount:       amount,
				core.FieldSubtotalAfterDisc: "900",
			}),
		})
		s.Clean()
		s.ComputeSettlements()
		if got := s.Records[0][core.FieldSettlement]; got != "0.00" {
			t.Fatalf("order amount %q: settlement = %q, want 0.00", amount, got)
		}
	}
}

func TestSettlementIdempotent(t *testing.T) {
	recs := sampleRecords()
	s := NewSession(headersFrom(recs), recs)
	s.Clean()
	s.ComputeSettlements()

	first := make([]string, len(s.Records))
	for i, rec := range s.Records {
		first[i] = rec[core.FieldSettlement]
	}

	s.Clean()
	s.ComputeSettlements()
	for i, rec := range s.Records {
		if rec[core.FieldSettlement] != first[i] {
			t.Fatalf("record %d: settlement changed on re-run: %q -> %q",
				i, first[i], rec[core.FieldSettlement])
		}
	}
}

func TestSummarize(t *testing.T) {
	recs := sampleRecords()
	s := NewSession(headersFrom(recs), recs)
	sum := s.Run()

	// Cancelled order is gone from every aggregate.
	if sum.InTransit != 1 || sum.Completed != 1 || sum.Delivered != 1 {
		t.Fatalf("status counts = %d/%d/%d, want 1/1/1",
			sum.InTransit, sum.Completed, sum.Delivered)
	}

	if math.Abs(sum.Settled+sum.NotSettled-sum.Total) > tol {
		t.Fatalf("settled %v + notSettled %v != total %v",
			sum.Settled, sum.NotSettled, sum.Total)
	}

	// Completed 1000/900 order settles at 756.90 and is the only settled one.
	if math.Abs(sum.Settled-756.90) > tol {
		t.Fatalf("settled = %v, want 756.90", sum.Settled)
	}

	// Quantity: 2 + 1 + unparseable(0) = 3.
	if sum.TotalQuantity != 3 {
		t.Fatalf("total quantity = %v, want 3", sum.TotalQuantity)
	}

	// Variations: empty variation skipped, counts sum to surviving
	// records with a non-empty variation.
	wantVariations := map[string]int{"Black / M": 1, "Red / S": 1}
	if len(sum.VariationCounts) != len(wantVariations) {
		t.Fatalf("variation counts = %v, want %v", sum.VariationCounts, wantVariations)
	}
	countSum := 0
	for name, want := range wantVariations {
		if sum.VariationCounts[name] != want {
			t.Fatalf("variation %q = %d, want %d", name, sum.VariationCounts[name], want)
		}
		countSum += sum.VariationCounts[name]
	}
	if countSum != 2 {
		t.Fatalf("variation count sum = %d, want 2", countSum)
	}
	if len(sum.VariationNames) != 2 || sum.VariationNames[0] != "Black / M" {
		t.Fatalf("variation names = %v, want first-seen order", sum.VariationNames)
	}
}

func TestSummarizeEmptySession(t *testing.T) {
	s := NewSession(nil, nil)
	sum := s.Run()

	if sum.Total != 0 || sum.Settled != 0 || sum.NotSettled != 0 {
		t.Fatalf("empty session totals = %v/%v/%v, want zeros", sum.Total, sum.Settled, sum.NotSettled)
	}
	if sum.InTransit+sum.Completed+sum.Delivered != 0 {
		t.Fatal("empty session should have zero status counts")
	}
	if len(sum.VariationCounts) != 0 {
		t.Fatalf("empty session variation counts = %v, want empty", sum.VariationCounts)
	}
}

func TestVerifyFieldLayout(t *testing.T) {
	if err := verifyFieldLayout(); err != nil {
		t.Fatalf("field layout invariant broken: %v", err)
	}
}
