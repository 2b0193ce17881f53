// internal/domain/sale/entity.go
package sale

import (
	"time"

	"gorm.io/gorm"

	"github.com/your-org/retailpos-backend/internal/domain/customer"
	"github.com/your-org/retailpos-backend/internal/domain/settlement"
)

// Sale represents a committed checkout with its settlement snapshot
type Sale struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	Number         string                 `gorm:"uniqueIndex;not null;size:50" json:"number"`
	CustomerID     *uint                  `gorm:"index" json:"customer_id"`
	TerminalID     string                 `gorm:"size:50;index" json:"terminal_id"`
	IdempotencyKey string                 `gorm:"size:100" json:"idempotency_key,omitempty"`
	PaymentType    settlement.PaymentType `gorm:"not null;size:20" json:"payment_type"`
	Status         settlement.Status      `gorm:"not null;size:20;index" json:"status"`

	// Financial snapshot at commit time, all USD unless suffixed otherwise
	SubtotalUSD     float64 `gorm:"not null" json:"subtotal_usd"`
	DiscountPercent float64 `gorm:"not null" json:"discount_percent"`
	DiscountUSD     float64 `gorm:"not null" json:"discount_usd"`
	PointsRedeemed  int     `gorm:"not null" json:"points_redeemed"`
	PointsValueUSD  float64 `gorm:"not null" json:"points_value_usd"`
	PointsEarned    int     `gorm:"not null" json:"points_earned"`
	NetTotalUSD     float64 `gorm:"not null" json:"net_total_usd"`
	AmountPaidUSD   float64 `gorm:"not null" json:"amount_paid_usd"`
	DebtUSD         float64 `gorm:"not null" json:"debt_usd"`
	TotalVES        float64 `gorm:"not null" json:"total_ves"`
	AmountPaidVES   float64 `gorm:"not null" json:"amount_paid_ves"`
	ExchangeRate    float64 `gorm:"not null" json:"exchange_rate"`

	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
	CreatedBy   uint           `gorm:"index" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *customer.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem         `gorm:"foreignKey:SaleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Payments []SalePayment      `gorm:"foreignKey:SaleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payments"`
}

// SaleItem is one sold product line, snapshotted at checkout
type SaleItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SaleID       uint      `gorm:"not null;index" json:"sale_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	UnitPriceUSD float64   `gorm:"not null" json:"unit_price_usd"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	LineTotalUSD float64   `gorm:"not null" json:"line_total_usd"`
	CreatedAt    time.Time `json:"created_at"`
}

// SalePayment is one payment channel entry. The amount is stored in the
// tagged currency: VES channels hold VES as entered, USD channels hold USD.
type SalePayment struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	SaleID    uint                `gorm:"not null;index" json:"sale_id"`
	Channel   string              `gorm:"not null;size:50" json:"channel"`
	Currency  settlement.Currency `gorm:"not null;size:3" json:"currency"`
	Amount    float64             `gorm:"not null" json:"amount"`
	CreatedAt time.Time           `json:"created_at"`
}

// TableName overrides
func (Sale) TableName() string        { return "sales" }
func (SaleItem) TableName() string    { return "sale_items" }
func (SalePayment) TableName() string { return "sale_payments" }

// IsCancelled reports whether the sale has been reversed
func (s *Sale) IsCancelled() bool {
	return s.CancelledAt != nil
}

// CanBeCancelled checks if the sale can still be reversed
func (s *Sale) CanBeCancelled() bool {
	return !s.IsCancelled()
}
