// internal/domain/inventory/entity.go
package inventory

import (
	"time"
)

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementTypeIn  MovementType = "in"
	MovementTypeOut MovementType = "out"
)

// MovementReason represents why stock moved
type MovementReason string

const (
	ReasonSale         MovementReason = "sale"
	ReasonSaleCancel   MovementReason = "sale_cancel"
	ReasonPurchase     MovementReason = "purchase"
	ReasonPurchaseVoid MovementReason = "purchase_void"
	ReasonAdjustment   MovementReason = "adjustment"
)

// StockMovement is one entry of the append-only inventory ledger. Every
// change to a product's stock writes exactly one movement in the same
// transaction.
type StockMovement struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ProductID     uint           `gorm:"not null;index" json:"product_id"`
	MovementType  MovementType   `gorm:"not null;size:10" json:"movement_type"`
	Reason        MovementReason `gorm:"not null;size:30" json:"reason"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	PreviousStock int            `gorm:"not null" json:"previous_stock"`
	NewStock      int            `gorm:"not null" json:"new_stock"`
	ReferenceType string         `gorm:"size:30" json:"reference_type"` // "sale", "purchase"
	ReferenceID   uint           `json:"reference_id"`
	Note          string         `gorm:"size:255" json:"note"`
	CreatedBy     uint           `gorm:"index" json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName overrides the table name
func (StockMovement) TableName() string {
	return "stock_movements"
}
