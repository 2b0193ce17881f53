// internal/domain/customer/service.go
package customer

import (
	"fmt"
	"strings"

	"github.com/your-org/retailpos-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles customer business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new customer service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CustomerListRequest represents customer list query parameters
type CustomerListRequest struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
	Search   string `form:"search"`
	WithDebt bool   `form:"with_debt"`
}

// CustomerListResponse represents customers with pagination
type CustomerListResponse struct {
	Customers []Customer `json:"customers"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}

// DebtPaymentRequest represents a payment against accumulated debt
type DebtPaymentRequest struct {
	AmountUSD float64 `json:"amount_usd" binding:"required,gt=0"`
	Channel   string  `json:"channel"`
	Note      string  `json:"note"`
}

// Find resolves a customer by name without creating one. Name matching is
// case-insensitive on the trimmed name; no match returns nil, nil.
func (s *Service) Find(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var cust Customer
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&cust).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return &cust, nil
}

// FindOrCreate resolves a customer by name, creating the record on first
// sight
func (s *Service) FindOrCreate(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	cust, err := s.Find(name)
	if err != nil {
		return nil, err
	}
	if cust != nil {
		return cust, nil
	}

	created := Customer{Name: name}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &created, nil
}

// GetCustomer retrieves a single customer by ID
func (s *Service) GetCustomer(id uint) (*Customer, error) {
	var cust Customer
	result := s.db.Where("id = ?", id).First(&cust)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("customer not found")
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", result.Error)
	}
	return &cust, nil
}

// GetCustomers retrieves customers with filtering and pagination
func (s *Service) GetCustomers(req *CustomerListRequest) (*CustomerListResponse, error) {
	var customers []Customer
	var total int64

	query := s.db.Model(&Customer{})

	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR document_id ILIKE ?", like, like, like)
	}
	if req.WithDebt {
		query = query.Where("debt_usd > 0")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("name asc").Offset(offset).Limit(req.Limit).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}

	return &CustomerListResponse{
		Customers: customers,
		Total:     total,
		Page:      req.Page,
		Limit:     req.Limit,
	}, nil
}

// UpdateCustomer updates contact fields
func (s *Service) UpdateCustomer(id uint, phone, documentID, notes *string) (*Customer, error) {
	cust, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if phone != nil {
		updates["phone"] = *phone
	}
	if documentID != nil {
		updates["document_id"] = *documentID
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	if len(updates) == 0 {
		return cust, nil
	}

	if err := s.db.Model(cust).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return s.GetCustomer(id)
}

// AdjustPoints adds or removes loyalty points (admin correction)
func (s *Service) AdjustPoints(id uint, delta int) (*Customer, error) {
	cust, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}
	if cust.Points+delta < 0 {
		return nil, fmt.Errorf("adjustment would leave a negative point balance")
	}

	if err := s.db.Model(cust).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error; err != nil {
		return nil, fmt.Errorf("failed to adjust points: %w", err)
	}
	return s.GetCustomer(id)
}

// PayDebt records a payment against the customer's accumulated debt and
// reduces the running total in one transaction
func (s *Service) PayDebt(id uint, req *DebtPaymentRequest, createdBy uint) (*Customer, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The balance check and the decrement live in the same transaction;
		// two tellers taking payments at once cannot both pass a stale check
		var cust Customer
		if err := tx.Where("id = ?", id).First(&cust).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("customer not found")
			}
			return fmt.Errorf("failed to retrieve customer: %w", err)
		}
		if req.AmountUSD > cust.DebtUSD {
			return fmt.Errorf("payment of %.2f exceeds outstanding debt of %.2f", req.AmountUSD, cust.DebtUSD)
		}

		payment := DebtPayment{
			CustomerID: id,
			AmountUSD:  req.AmountUSD,
			Channel:    req.Channel,
			Note:       req.Note,
			CreatedBy:  createdBy,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record debt payment: %w", err)
		}
		if err := tx.Model(&Customer{}).Where("id = ?", id).
			UpdateColumn("debt_usd", gorm.Expr("GREATEST(debt_usd - ?, 0)", req.AmountUSD)).Error; err != nil {
			return fmt.Errorf("failed to reduce debt total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCustomer(id)
}

// GetDebtPayments lists a customer's debt payments, newest first
func (s *Service) GetDebtPayments(id uint) ([]DebtPayment, error) {
	var payments []DebtPayment
	err := s.db.Where("customer_id = ?", id).Order("created_at desc").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve debt payments: %w", err)
	}
	return payments, nil
}
