// internal/domain/supplier/service.go
package supplier

import (
	"fmt"

	"gorm.io/gorm"
)

// Service handles supplier business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new supplier service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateSupplierRequest represents supplier creation data
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateSupplierRequest represents supplier update data
type UpdateSupplierRequest struct {
	Name     *string `json:"name,omitempty"`
	TaxID    *string `json:"tax_id,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreateSupplier creates a new supplier
func (s *Service) CreateSupplier(req *CreateSupplierRequest) (*Supplier, error) {
	sup := Supplier{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Notes:    req.Notes,
		IsActive: true,
	}
	if err := s.db.Create(&sup).Error; err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &sup, nil
}

// GetSupplier retrieves a single supplier by ID
func (s *Service) GetSupplier(id uint) (*Supplier, error) {
	var sup Supplier
	result := s.db.Where("id = ?", id).First(&sup)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("supplier not found")
		}
		return nil, fmt.Errorf("failed to retrieve supplier: %w", result.Error)
	}
	return &sup, nil
}

// GetSuppliers lists suppliers, optionally filtered by a name search
func (s *Service) GetSuppliers(search string, includeInactive bool) ([]Supplier, error) {
	var suppliers []Supplier
	query := s.db.Model(&Supplier{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve suppliers: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier updates supplier fields
func (s *Service) UpdateSupplier(id uint, req *UpdateSupplierRequest) (*Supplier, error) {
	sup, err := s.GetSupplier(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.TaxID != nil {
		updates["tax_id"] = *req.TaxID
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return sup, nil
	}

	if err := s.db.Model(sup).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return s.GetSupplier(id)
}

// DeleteSupplier soft-deletes a supplier
func (s *Service) DeleteSupplier(id uint) error {
	result := s.db.Delete(&Supplier{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supplier not found")
	}
	return nil
}
