package core

// Record is a single order row from a marketplace export, keyed by field
// name. Field order is owned by the session that holds the record set, not
// by the map itself.
type Record map[string]string

// Field names from the marketplace order export.
const (
	FieldOrderID             = "Order ID"
	FieldOrderStatus         = "Order Status"
	FieldOrderSubstatus      = "Order Substatus"
	FieldVariation           = "Variation"
	FieldQuantity            = "Quantity"
	FieldSubtotalBeforeDisc  = "SKU Subtotal Before Discount"
	FieldPlatformDiscount    = "SKU Platform Discount"
	FieldSubtotalAfterDisc   = "SKU Subtotal After Discount"
	FieldShippingAfterDisc   = "Shipping Fee After Discount"
	FieldPaymentPlatformDisc = "Payment platform discount"
	FieldOrderAmount         = "Order Amount"
	FieldSettlement          = "Settlement Amount"
)

// FieldCommissionBase is the field the platform charges commission on.
// It must sit three positions before Order Amount in KeepFields; the
// pipeline verifies that layout at startup.
const FieldCommissionBase = FieldSubtotalAfterDisc

// KeepFields is the ordered set of columns retained from an export. Order is
// significant: the commission base is expected three positions before Order
// Amount, and the dashboard renders columns in this order.
var KeepFields = []string{
	FieldOrderID,
	FieldOrderStatus,
	FieldOrderSubstatus,
	FieldVariation,
	FieldQuantity,
	FieldSubtotalBeforeDisc,
	FieldPlatformDiscount,
	FieldSubtotalAfterDisc,
	FieldShippingAfterDisc,
	FieldPaymentPlatformDisc,
	FieldOrderAmount,
}
