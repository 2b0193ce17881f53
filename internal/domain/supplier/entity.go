// internal/domain/supplier/entity.go
package supplier

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a goods supplier
type Supplier struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	TaxID     string         `gorm:"size:20" json:"tax_id"` // RIF
	Phone     string         `gorm:"size:20" json:"phone"`
	Email     string         `gorm:"size:255" json:"email"`
	Address   string         `gorm:"size:500" json:"address"`
	Notes     string         `gorm:"type:text" json:"notes"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Supplier) TableName() string {
	return "suppliers"
}
