// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// TerminalCart is the in-progress cart of one POS terminal, held in Redis
// until checkout commits or the TTL expires
type TerminalCart struct {
	TerminalID string     `json:"terminal_id"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem is one product position. UnitPriceUSD is snapshotted when the
// item is added so a price change mid-sale does not move the ticket.
type CartItem struct {
	ProductID    uint      `json:"product_id"`
	Name         string    `json:"name"`
	Barcode      string    `json:"barcode"`
	UnitPriceUSD float64   `json:"unit_price_usd"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// Totals represents the running cart totals shown at the terminal
type Totals struct {
	ItemCount     int     `json:"item_count"`
	TotalQuantity int     `json:"total_quantity"`
	SubtotalUSD   float64 `json:"subtotal_usd"`
	SubtotalVES   float64 `json:"subtotal_ves"`
	ExchangeRate  float64 `json:"exchange_rate"`
}

// CalculateTotals computes the running totals at the given rate
func (c *TerminalCart) CalculateTotals(rate float64) Totals {
	totals := Totals{ItemCount: len(c.Items), ExchangeRate: rate}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
		totals.SubtotalUSD += item.UnitPriceUSD * float64(item.Quantity)
	}
	totals.SubtotalVES = totals.SubtotalUSD * rate
	return totals
}
