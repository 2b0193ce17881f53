package cart

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateTotals(t *testing.T) {
	now := time.Now()
	c := &TerminalCart{
		TerminalID: "caja-1",
		Items: []CartItem{
			{ProductID: 1, Name: "Harina PAN 1kg", UnitPriceUSD: 1.50, Quantity: 2, AddedAt: now},
			{ProductID: 2, Name: "Malta 355ml", UnitPriceUSD: 0.75, Quantity: 4, AddedAt: now},
		},
	}

	totals := c.CalculateTotals(36.5)

	if totals.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", totals.ItemCount)
	}
	if totals.TotalQuantity != 6 {
		t.Errorf("TotalQuantity = %d, want 6", totals.TotalQuantity)
	}
	if !almostEqual(totals.SubtotalUSD, 6.00) {
		t.Errorf("SubtotalUSD = %v, want 6.00", totals.SubtotalUSD)
	}
	if !almostEqual(totals.SubtotalVES, 219.00) {
		t.Errorf("SubtotalVES = %v, want 219.00", totals.SubtotalVES)
	}
	if totals.ExchangeRate != 36.5 {
		t.Errorf("ExchangeRate = %v, want 36.5", totals.ExchangeRate)
	}
}

func TestCalculateTotalsEmptyCart(t *testing.T) {
	c := &TerminalCart{TerminalID: "caja-2"}

	totals := c.CalculateTotals(36.5)

	if totals.ItemCount != 0 || totals.TotalQuantity != 0 {
		t.Errorf("empty cart counted items: %+v", totals)
	}
	if totals.SubtotalUSD != 0 || totals.SubtotalVES != 0 {
		t.Errorf("empty cart has nonzero subtotal: %+v", totals)
	}
}
