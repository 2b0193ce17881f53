package product

import (
	"math"
	"testing"
)

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      bool
	}{
		{"above threshold", 10, 5, false},
		{"at threshold", 5, 5, true},
		{"below threshold", 2, 5, true},
		{"out of stock", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock, LowStockThreshold: tt.threshold}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInStock(t *testing.T) {
	p := &Product{Stock: 1}
	if !p.IsInStock() {
		t.Error("expected product with stock 1 to be in stock")
	}

	p.Stock = 0
	if p.IsInStock() {
		t.Error("expected product with stock 0 to be out of stock")
	}
}

func TestPriceVES(t *testing.T) {
	p := &Product{PriceUSD: 2.50}
	if got := p.PriceVES(36.5); math.Abs(got-91.25) > 1e-9 {
		t.Errorf("PriceVES(36.5) = %v, want 91.25", got)
	}
}
