// internal/domain/customer/entity.go
package customer

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a store customer. DebtUSD is a denormalized running
// total kept in sync best-effort after each sale commit; the sales table is
// the source of truth.
type Customer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Phone      string         `gorm:"size:20" json:"phone"`
	DocumentID string         `gorm:"size:20" json:"document_id"` // cedula / RIF
	Points     int            `gorm:"default:0" json:"points"`
	DebtUSD    float64        `gorm:"default:0" json:"debt_usd"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// DebtPayment records a payment a customer makes against accumulated debt,
// outside of any particular sale
type DebtPayment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	AmountUSD  float64   `gorm:"not null" json:"amount_usd"`
	Channel    string    `gorm:"size:50" json:"channel"`
	Note       string    `gorm:"size:255" json:"note"`
	CreatedBy  uint      `gorm:"index" json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides
func (Customer) TableName() string    { return "customers" }
func (DebtPayment) TableName() string { return "debt_payments" }

// HasDebt checks if the customer owes anything
func (c *Customer) HasDebt() bool {
	return c.DebtUSD > 0
}
