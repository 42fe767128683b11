// utils/numbers.go
package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateInvoiceNumber builds the human-readable invoice code from local
// creation time: INV-YYYYMMDD-HHMM. Not guaranteed unique on its own; the
// invoice table enforces uniqueness and the handler regenerates on conflict.
func GenerateInvoiceNumber(now time.Time) string {
	return "INV-" + now.Format("20060102-1504")
}

// GenerateCustomerID builds a display customer id: C + last 6 digits of the
// millisecond timestamp + 3-digit zero-padded random suffix.
func GenerateCustomerID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("C%s%03d", ms, rand.Intn(1000))
}
