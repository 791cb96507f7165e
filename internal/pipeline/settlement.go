package pipeline

import "payout/internal/core"

// Platform fee schedule. Shipping and the payment-platform discount are
// charged on the gross order amount; commission is charged on the
// post-discount SKU subtotal. That asymmetry is the marketplace's, not ours.
const (
	shippingRate         = 0.0224
	platformDiscountRate = 0.055
	commissionRate       = 0.073
)

// ComputeSettlements derives the Settlement Amount for every record in the
// session. The computation is independent per record and deterministic, so
// re-running it over an already-computed session yields identical values.
func (s *Session) ComputeSettlements() {
	for _, rec := range s.Records {
		rec[core.FieldSettlement] = core.FormatAmount(settle(rec))
	}
}

// settle computes one record's net payout. A zero (or unparseable) order
// amount short-circuits to zero with no fees applied.
func settle(rec core.Record) float64 {
	orderAmt := core.ParseNumber(rec[core.FieldOrderAmount])
	if orderAmt == 0 {
		return 0
	}

	shipping := orderAmt * shippingRate
	platformDiscount := orderAmt * platformDiscountRate

	base := core.ParseNumber(rec[core.FieldCommissionBase])
	commission := base * commissionRate

	return core.Round2(base - (shipping + commission + platformDiscount))
}
