// internal/domain/purchase/entity.go
package purchase

import (
	"time"

	"gorm.io/gorm"

	"github.com/your-org/retailpos-backend/internal/domain/supplier"
)

// PurchaseStatus represents the purchase lifecycle
type PurchaseStatus string

const (
	PurchaseStatusDraft    PurchaseStatus = "draft"    // created, stock not yet applied
	PurchaseStatusReceived PurchaseStatus = "received" // goods in, stock applied
	PurchaseStatusVoided   PurchaseStatus = "voided"   // received purchase reversed
)

// Purchase represents an inbound goods purchase from a supplier
type Purchase struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Number       string         `gorm:"uniqueIndex;not null;size:50" json:"number"`
	SupplierID   uint           `gorm:"not null;index" json:"supplier_id"`
	Status       PurchaseStatus `gorm:"not null;default:'draft'" json:"status"`
	TotalCostUSD float64        `gorm:"not null" json:"total_cost_usd"`
	InvoiceRef   string         `gorm:"size:100" json:"invoice_ref"`
	Notes        string         `gorm:"type:text" json:"notes"`
	ReceivedAt   *time.Time     `json:"received_at"`
	VoidedAt     *time.Time     `json:"voided_at"`
	CreatedBy    uint           `gorm:"index" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Supplier supplier.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseItem    `gorm:"foreignKey:PurchaseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// PurchaseItem is one product line of a purchase
type PurchaseItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PurchaseID  uint      `gorm:"not null;index" json:"purchase_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Name        string    `gorm:"not null;size:255" json:"name"` // snapshot
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitCostUSD float64   `gorm:"not null" json:"unit_cost_usd"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides
func (Purchase) TableName() string     { return "purchases" }
func (PurchaseItem) TableName() string { return "purchase_items" }

// CanBeReceived checks if goods can still be booked in
func (p *Purchase) CanBeReceived() bool {
	return p.Status == PurchaseStatusDraft
}

// CanBeVoided checks if the purchase can be reversed
func (p *Purchase) CanBeVoided() bool {
	return p.Status == PurchaseStatusReceived
}
