// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Product represents an item sold at the store. Prices are kept in USD; the
// VES display price is always derived at the current exchange rate.
type Product struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Barcode           string         `gorm:"uniqueIndex;not null;size:100" json:"barcode"`
	Name              string         `gorm:"not null;size:255" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	PriceUSD          float64        `gorm:"not null" json:"price_usd"`
	CostUSD           float64        `gorm:"default:0" json:"cost_usd"`
	CategoryID        *uint          `gorm:"index" json:"category_id"`
	Stock             int            `gorm:"default:0" json:"stock"`
	LowStockThreshold int            `gorm:"default:5" json:"low_stock_threshold"`
	Unit              string         `gorm:"size:20;default:'unit'" json:"unit"` // unit, kg, lt
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
}

// Category represents product categories
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// Business methods for Product

// IsInStock checks if the product has units left
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// IsLowStock checks if the product is at or below its threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// PriceVES returns the local-currency price at the given rate
func (p *Product) PriceVES(rate float64) float64 {
	return p.PriceUSD * rate
}
