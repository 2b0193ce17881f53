// internal/domain/inventory/service.go
package inventory

import (
	"fmt"

	"github.com/your-org/retailpos-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles the stock-movement ledger
type Service struct {
	db *gorm.DB
}

// NewService creates a new inventory service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AdjustStockRequest represents a manual stock correction
type AdjustStockRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
	Note      string `json:"note"`
}

// MovementListRequest represents movement list query parameters
type MovementListRequest struct {
	ProductID uint   `form:"product_id"`
	Reason    string `form:"reason"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=50"`
}

// ApplyMovement decrements or increments a product's stock and writes the
// ledger entry inside the caller's transaction. Quantity is always positive;
// the direction comes from movementType. Outbound movements that would drive
// stock negative fail.
func ApplyMovement(tx *gorm.DB, productID uint, movementType MovementType, reason MovementReason, quantity int, refType string, refID uint, note string, createdBy uint) error {
	if quantity <= 0 {
		return fmt.Errorf("movement quantity must be positive")
	}

	var prod product.Product
	if err := tx.Where("id = ?", productID).First(&prod).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("product %d not found", productID)
		}
		return fmt.Errorf("failed to load product %d: %w", productID, err)
	}

	delta := quantity
	if movementType == MovementTypeOut {
		delta = -quantity
	}

	newStock := prod.Stock + delta
	if newStock < 0 {
		return fmt.Errorf("insufficient stock for product '%s': have %d, need %d", prod.Name, prod.Stock, quantity)
	}

	if err := tx.Model(&product.Product{}).Where("id = ?", productID).
		UpdateColumn("stock", newStock).Error; err != nil {
		return fmt.Errorf("failed to update stock for product %d: %w", productID, err)
	}

	movement := StockMovement{
		ProductID:     productID,
		MovementType:  movementType,
		Reason:        reason,
		Quantity:      quantity,
		PreviousStock: prod.Stock,
		NewStock:      newStock,
		ReferenceType: refType,
		ReferenceID:   refID,
		Note:          note,
		CreatedBy:     createdBy,
	}
	if err := tx.Create(&movement).Error; err != nil {
		return fmt.Errorf("failed to write stock movement: %w", err)
	}

	return nil
}

// AdjustStock applies a manual correction as a single transaction
func (s *Service) AdjustStock(req *AdjustStockRequest, createdBy uint) error {
	movementType := MovementTypeIn
	quantity := req.Delta
	if req.Delta < 0 {
		movementType = MovementTypeOut
		quantity = -req.Delta
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return ApplyMovement(tx, req.ProductID, movementType, ReasonAdjustment, quantity, "", 0, req.Note, createdBy)
	})
}

// GetMovements lists ledger entries, newest first
func (s *Service) GetMovements(req *MovementListRequest) ([]StockMovement, int64, error) {
	var movements []StockMovement
	var total int64

	query := s.db.Model(&StockMovement{})
	if req.ProductID > 0 {
		query = query.Where("product_id = ?", req.ProductID)
	}
	if req.Reason != "" {
		query = query.Where("reason = ?", req.Reason)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at desc").Offset(offset).Limit(req.Limit).Find(&movements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve stock movements: %w", err)
	}

	return movements, total, nil
}
