package utils

import "testing"

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice float64
		quantity  int
		want      float64
	}{
		{"simple", 1000, 2, 2000},
		{"single unit", 500, 1, 500},
		{"zero price", 0, 5, 0},
		{"zero quantity", 100, 0, 0},
		{"negative price fails closed", -10, 2, 0},
		{"negative quantity fails closed", 10, -2, 0},
	}
	for _, tc := range cases {
		if got := LineTotal(tc.unitPrice, tc.quantity); got != tc.want {
			t.Errorf("%s: LineTotal(%v, %d) = %v, want %v", tc.name, tc.unitPrice, tc.quantity, got, tc.want)
		}
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := Subtotal([]float64{2000, 500, 125.5})
	b := Subtotal([]float64{125.5, 2000, 500})
	if a != b {
		t.Fatalf("subtotal depends on order: %v vs %v", a, b)
	}
	if a != 2625.5 {
		t.Fatalf("subtotal = %v, want 2625.5", a)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("empty subtotal = %v, want 0", got)
	}
}

func TestTotalHasNoFloor(t *testing.T) {
	if got := Total(1000, 200, 100); got != 900 {
		t.Fatalf("Total = %v, want 900", got)
	}
	// An oversized discount legitimately drives the total negative.
	if got := Total(100, 500, 50); got != -350 {
		t.Fatalf("Total with oversized discount = %v, want -350", got)
	}
}

func TestRemainingFloorsAtZero(t *testing.T) {
	if got := Remaining(2400, 1000); got != 1400 {
		t.Fatalf("Remaining = %v, want 1400", got)
	}
	if got := Remaining(2400, 2400); got != 0 {
		t.Fatalf("Remaining at exact payment = %v, want 0", got)
	}
	if got := Remaining(2400, 5000); got != 0 {
		t.Fatalf("Remaining when overpaid = %v, want 0", got)
	}
	if got := Remaining(-350, 0); got != 0 {
		t.Fatalf("Remaining on negative total = %v, want 0", got)
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		name  string
		paid  float64
		total float64
		want  string
	}{
		{"unpaid", 0, 2400, "pending"},
		{"partial", 1000, 2400, "partial"},
		{"exact tie resolves to paid", 2400, 2400, "paid"},
		{"overpaid", 3000, 2400, "paid"},
		{"negative total is trivially paid", 0, -350, "paid"},
	}
	for _, tc := range cases {
		if got := PaymentStatus(tc.paid, tc.total); got != tc.want {
			t.Errorf("%s: PaymentStatus(%v, %v) = %q, want %q", tc.name, tc.paid, tc.total, got, tc.want)
		}
	}
}

func TestInvoiceScenario(t *testing.T) {
	// items: 1000x2 and 500x1, discount 200, tax 100
	lineTotals := []float64{LineTotal(1000, 2), LineTotal(500, 1)}
	subtotal := Subtotal(lineTotals)
	if subtotal != 2500 {
		t.Fatalf("subtotal = %v, want 2500", subtotal)
	}
	total := Total(subtotal, 200, 100)
	if total != 2400 {
		t.Fatalf("total = %v, want 2400", total)
	}

	if got := Remaining(total, 2400); got != 0 {
		t.Fatalf("remaining fully paid = %v, want 0", got)
	}
	if got := PaymentStatus(2400, total); got != "paid" {
		t.Fatalf("status fully paid = %q, want paid", got)
	}

	if got := Remaining(total, 1000); got != 1400 {
		t.Fatalf("remaining partial = %v, want 1400", got)
	}
	if got := PaymentStatus(1000, total); got != "partial" {
		t.Fatalf("status partial = %q, want partial", got)
	}
}
