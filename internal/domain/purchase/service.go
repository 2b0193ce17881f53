// internal/domain/purchase/service.go
package purchase

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/retailpos-backend/internal/domain/inventory"
	"github.com/your-org/retailpos-backend/internal/domain/product"
	"github.com/your-org/retailpos-backend/internal/domain/supplier"
)

// Service handles purchasing business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new purchase service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreatePurchaseRequest represents purchase creation data
type CreatePurchaseRequest struct {
	SupplierID uint                  `json:"supplier_id" binding:"required"`
	InvoiceRef string                `json:"invoice_ref"`
	Notes      string                `json:"notes"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemRequest is one requested purchase line
type PurchaseItemRequest struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitCostUSD float64 `json:"unit_cost_usd" binding:"gte=0"`
}

// PurchaseListRequest represents purchase list query parameters
type PurchaseListRequest struct {
	Page       int            `form:"page,default=1"`
	Limit      int            `form:"limit,default=20"`
	SupplierID uint           `form:"supplier_id"`
	Status     PurchaseStatus `form:"status"`
}

// CreatePurchase creates a draft purchase; stock is untouched until Receive
func (s *Service) CreatePurchase(req *CreatePurchaseRequest, createdBy uint) (*Purchase, error) {
	var sup supplier.Supplier
	if err := s.db.Where("id = ? AND is_active = ?", req.SupplierID, true).First(&sup).Error; err != nil {
		return nil, fmt.Errorf("supplier not found or inactive")
	}

	var p Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var totalCost float64
		items := make([]PurchaseItem, 0, len(req.Items))
		for _, line := range req.Items {
			var prod product.Product
			if err := tx.Where("id = ?", line.ProductID).First(&prod).Error; err != nil {
				return fmt.Errorf("product %d not found", line.ProductID)
			}
			items = append(items, PurchaseItem{
				ProductID:   prod.ID,
				Name:        prod.Name,
				Quantity:    line.Quantity,
				UnitCostUSD: line.UnitCostUSD,
			})
			totalCost += line.UnitCostUSD * float64(line.Quantity)
		}

		p = Purchase{
			SupplierID:   req.SupplierID,
			Status:       PurchaseStatusDraft,
			TotalCostUSD: totalCost,
			InvoiceRef:   req.InvoiceRef,
			Notes:        req.Notes,
			CreatedBy:    createdBy,
		}
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		p.Number = fmt.Sprintf("PUR-%s-%05d", time.Now().Format("20060102"), p.ID)
		if err := tx.Model(&p).Update("number", p.Number).Error; err != nil {
			return fmt.Errorf("failed to set purchase number: %w", err)
		}

		for i := range items {
			items[i].PurchaseID = p.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to create purchase item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPurchase(p.ID)
}

// GetPurchase retrieves a single purchase by ID
func (s *Service) GetPurchase(id uint) (*Purchase, error) {
	var p Purchase
	result := s.db.Preload("Items").Preload("Supplier").Where("id = ?", id).First(&p)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("purchase not found")
		}
		return nil, fmt.Errorf("failed to retrieve purchase: %w", result.Error)
	}
	return &p, nil
}

// GetPurchases retrieves purchases with filtering and pagination
func (s *Service) GetPurchases(req *PurchaseListRequest) ([]Purchase, int64, error) {
	var purchases []Purchase
	var total int64

	query := s.db.Model(&Purchase{}).Preload("Items").Preload("Supplier")
	if req.SupplierID > 0 {
		query = query.Where("supplier_id = ?", req.SupplierID)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at desc").Offset(offset).Limit(req.Limit).Find(&purchases).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve purchases: %w", err)
	}

	return purchases, total, nil
}

// Receive books the goods in: marks the purchase received and applies
// inbound stock movements for every line in one transaction. Product cost
// prices are refreshed to the latest purchase cost.
func (s *Service) Receive(id uint, receivedBy uint) (*Purchase, error) {
	p, err := s.GetPurchase(id)
	if err != nil {
		return nil, err
	}
	if !p.CanBeReceived() {
		return nil, fmt.Errorf("purchase %s cannot be received in status %s", p.Number, p.Status)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range p.Items {
			if err := inventory.ApplyMovement(tx, item.ProductID, inventory.MovementTypeIn,
				inventory.ReasonPurchase, item.Quantity, "purchase", p.ID, p.Number, receivedBy); err != nil {
				return err
			}
			if item.UnitCostUSD > 0 {
				if err := tx.Model(&product.Product{}).Where("id = ?", item.ProductID).
					UpdateColumn("cost_usd", item.UnitCostUSD).Error; err != nil {
					return fmt.Errorf("failed to update cost price: %w", err)
				}
			}
		}

		now := time.Now().UTC()
		return tx.Model(&Purchase{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"status":      PurchaseStatusReceived,
			"received_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPurchase(id)
}

// Void reverses a received purchase, booking the goods back out
func (s *Service) Void(id uint, voidedBy uint) (*Purchase, error) {
	p, err := s.GetPurchase(id)
	if err != nil {
		return nil, err
	}
	if !p.CanBeVoided() {
		return nil, fmt.Errorf("purchase %s cannot be voided in status %s", p.Number, p.Status)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range p.Items {
			if err := inventory.ApplyMovement(tx, item.ProductID, inventory.MovementTypeOut,
				inventory.ReasonPurchaseVoid, item.Quantity, "purchase", p.ID, p.Number, voidedBy); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		return tx.Model(&Purchase{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"status":    PurchaseStatusVoided,
			"voided_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPurchase(id)
}
