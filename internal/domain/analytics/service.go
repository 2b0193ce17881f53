// internal/domain/analytics/service.go
package analytics

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/retailpos-backend/internal/domain/customer"
	"github.com/your-org/retailpos-backend/internal/domain/product"
	"github.com/your-org/retailpos-backend/internal/domain/sale"
)

// Service handles reporting queries over committed sales
type Service struct {
	db *gorm.DB
}

// NewService creates a new analytics service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SalesSummary aggregates committed, non-cancelled sales over a period
type SalesSummary struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	SaleCount      int64     `json:"sale_count"`
	SubtotalUSD    float64   `json:"subtotal_usd"`
	DiscountUSD    float64   `json:"discount_usd"`
	PointsValueUSD float64   `json:"points_value_usd"`
	NetTotalUSD    float64   `json:"net_total_usd"`
	AmountPaidUSD  float64   `json:"amount_paid_usd"`
	DebtUSD        float64   `json:"debt_usd"`
}

// PaymentTypeBreakdown is one payment type's share of a period
type PaymentTypeBreakdown struct {
	PaymentType   string  `json:"payment_type"`
	SaleCount     int64   `json:"sale_count"`
	NetTotalUSD   float64 `json:"net_total_usd"`
	AmountPaidUSD float64 `json:"amount_paid_usd"`
}

// TopProduct is one product's sold volume over a period
type TopProduct struct {
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	QuantitySum int     `json:"quantity_sum"`
	RevenueUSD  float64 `json:"revenue_usd"`
}

// DebtorSummary is one customer's outstanding balance
type DebtorSummary struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	DebtUSD    float64 `json:"debt_usd"`
	Phone      string  `json:"phone"`
}

// Summary aggregates sales between from (inclusive) and to (exclusive)
func (s *Service) Summary(from, to time.Time) (*SalesSummary, error) {
	summary := SalesSummary{From: from, To: to}

	row := s.db.Model(&sale.Sale{}).
		Select(`COUNT(*) AS sale_count,
			COALESCE(SUM(subtotal_usd), 0) AS subtotal_usd,
			COALESCE(SUM(discount_usd), 0) AS discount_usd,
			COALESCE(SUM(points_value_usd), 0) AS points_value_usd,
			COALESCE(SUM(net_total_usd), 0) AS net_total_usd,
			COALESCE(SUM(amount_paid_usd), 0) AS amount_paid_usd,
			COALESCE(SUM(debt_usd), 0) AS debt_usd`).
		Where("created_at >= ? AND created_at < ? AND cancelled_at IS NULL", from, to).
		Row()

	if err := row.Scan(&summary.SaleCount, &summary.SubtotalUSD, &summary.DiscountUSD,
		&summary.PointsValueUSD, &summary.NetTotalUSD, &summary.AmountPaidUSD, &summary.DebtUSD); err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return &summary, nil
}

// DailySummary aggregates a single calendar day
func (s *Service) DailySummary(day time.Time) (*SalesSummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.Summary(from, from.AddDate(0, 0, 1))
}

// ByPaymentType breaks a period down per payment type
func (s *Service) ByPaymentType(from, to time.Time) ([]PaymentTypeBreakdown, error) {
	var rows []PaymentTypeBreakdown
	err := s.db.Model(&sale.Sale{}).
		Select(`payment_type,
			COUNT(*) AS sale_count,
			COALESCE(SUM(net_total_usd), 0) AS net_total_usd,
			COALESCE(SUM(amount_paid_usd), 0) AS amount_paid_usd`).
		Where("created_at >= ? AND created_at < ? AND cancelled_at IS NULL", from, to).
		Group("payment_type").
		Order("net_total_usd desc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to break down payment types: %w", err)
	}
	return rows, nil
}

// TopProducts lists the best-selling products of a period by quantity
func (s *Service) TopProducts(from, to time.Time, limit int) ([]TopProduct, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var rows []TopProduct
	err := s.db.Table("sale_items").
		Select(`sale_items.product_id,
			sale_items.name,
			SUM(sale_items.quantity) AS quantity_sum,
			COALESCE(SUM(sale_items.line_total_usd), 0) AS revenue_usd`).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.created_at >= ? AND sales.created_at < ? AND sales.cancelled_at IS NULL AND sales.deleted_at IS NULL", from, to).
		Group("sale_items.product_id, sale_items.name").
		Order("quantity_sum desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	return rows, nil
}

// OutstandingDebt lists customers with an open balance, largest first
func (s *Service) OutstandingDebt(limit int) ([]DebtorSummary, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var rows []DebtorSummary
	err := s.db.Model(&customer.Customer{}).
		Select("id AS customer_id, name, debt_usd, phone").
		Where("debt_usd > 0").
		Order("debt_usd desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list debtors: %w", err)
	}
	return rows, nil
}

// LowStock lists active products at or below their low-stock threshold
func (s *Service) LowStock() ([]product.Product, error) {
	var products []product.Product
	err := s.db.Where("is_active = ? AND stock <= low_stock_threshold", true).
		Order("stock asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}
