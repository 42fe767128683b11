// utils/billing.go
package utils

// Money math shared by the purchase dialog, invoice form and quotation
// preview. Inputs that were left blank arrive as zero values, so every
// function degrades to 0 instead of failing while a form is incomplete.

// LineTotal is the frozen per-line amount: unit price times quantity.
func LineTotal(unitPrice float64, quantity int) float64 {
	if unitPrice < 0 || quantity < 0 {
		return 0
	}
	return unitPrice * float64(quantity)
}

// Subtotal sums frozen line totals. Order of items never matters.
func Subtotal(lineTotals []float64) float64 {
	var sum float64
	for _, lt := range lineTotals {
		sum += lt
	}
	return sum
}

// Total applies discount and tax. No floor: a discount larger than
// subtotal+tax legitimately produces a negative total.
func Total(subtotal, discount, tax float64) float64 {
	return subtotal - discount + tax
}

// Remaining is the outstanding balance, floored at zero so an overpayment
// never surfaces as a negative amount due.
func Remaining(total, paidAmount float64) float64 {
	r := total - paidAmount
	if r < 0 {
		return 0
	}
	return r
}

// PaymentStatus derives the tri-state status from paid amount vs. total.
// Exact equality resolves to paid.
func PaymentStatus(paidAmount, total float64) string {
	switch {
	case paidAmount >= total:
		return "paid"
	case paidAmount > 0:
		return "partial"
	default:
		return "pending"
	}
}
