// internal/domain/sale/service.go
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/customer"
	"github.com/your-org/retailpos-backend/internal/domain/inventory"
	"github.com/your-org/retailpos-backend/internal/domain/settlement"
)

// Service handles sale checkout and lifecycle business logic
type Service struct {
	db        *gorm.DB
	customers *customer.Service
	config    *config.Config
}

// NewService creates a new sale service
func NewService(db *gorm.DB, customers *customer.Service, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		customers: customers,
		config:    cfg,
	}
}

// CheckoutRequest represents a full checkout submission from a terminal
type CheckoutRequest struct {
	Items           []CheckoutItem            `json:"items" binding:"required,min=1,dive"`
	DiscountPercent float64                   `json:"discount_percent"`
	PointsRedeemed  int                       `json:"points_redeemed"`
	PaymentType     settlement.PaymentType    `json:"payment_type" binding:"required"`
	Breakdown       []settlement.PaymentEntry `json:"breakdown"`
	AmountEntered   float64                   `json:"amount_entered"`
	CustomerName    string                    `json:"customer_name"`
	TerminalID      string                    `json:"terminal_id"`
	IdempotencyKey  string                    `json:"idempotency_key"`
}

// CheckoutItem is one submitted cart line
type CheckoutItem struct {
	ProductID    uint    `json:"product_id" binding:"required"`
	Name         string  `json:"name"`
	UnitPriceUSD float64 `json:"unit_price_usd" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
}

// CheckoutResponse carries the committed sale plus orchestration outcomes
// that are not part of the sale record itself
type CheckoutResponse struct {
	Sale            *Sale  `json:"sale"`
	Duplicate       bool   `json:"duplicate,omitempty"`
	DebtSyncWarning string `json:"debt_sync_warning,omitempty"`
}

// SaleListRequest represents sale list query parameters
type SaleListRequest struct {
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
	CustomerID  uint   `form:"customer_id"`
	PaymentType string `form:"payment_type"`
	Status      string `form:"status"`
	TerminalID  string `form:"terminal_id"`
	DateFrom    string `form:"date_from"` // YYYY-MM-DD
	DateTo      string `form:"date_to"`
	Cancelled   bool   `form:"cancelled"`
}

// Checkout settles and commits a sale. The flow is strict: look up the
// customer without creating one, compute the settlement (any input problem
// surfaces as a validation error before a single row is written), then
// commit the sale, its lines, its payments, the stock movements and the
// point mutations in one transaction. A first-time customer is only created
// once the input has validated. The customer's denormalized debt total is
// synced after commit; a failure there never fails the sale.
func (s *Service) Checkout(ctx context.Context, req *CheckoutRequest, exchangeRate float64, createdBy uint) (*CheckoutResponse, error) {
	cust, err := s.customers.Find(req.CustomerName)
	if err != nil {
		return nil, err
	}

	availablePoints := 0
	if cust != nil {
		availablePoints = cust.Points
	}

	result, err := settle(req, availablePoints, exchangeRate)
	if err != nil {
		return nil, err
	}

	if cust == nil && req.CustomerName != "" {
		cust, err = s.customers.FindOrCreate(req.CustomerName)
		if err != nil {
			return nil, err
		}
	}

	pointsEarned := 0
	if cust != nil {
		pointsEarned = int(result.NetTotalUSD)
	}

	return s.commit(ctx, req, result, cust, pointsEarned, createdBy)
}

// settle maps a checkout submission onto the settlement calculator
func settle(req *CheckoutRequest, availablePoints int, exchangeRate float64) (*settlement.Settlement, error) {
	cartLines := make([]settlement.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		cartLines = append(cartLines, settlement.CartLine{
			ProductID:    item.ProductID,
			Name:         item.Name,
			UnitPriceUSD: item.UnitPriceUSD,
			Quantity:     item.Quantity,
		})
	}

	return settlement.Compute(settlement.Input{
		Cart:            cartLines,
		DiscountPercent: req.DiscountPercent,
		PointsRedeemed:  req.PointsRedeemed,
		AvailablePoints: availablePoints,
		PaymentType:     req.PaymentType,
		Breakdown:       req.Breakdown,
		AmountEntered:   req.AmountEntered,
		ExchangeRate:    exchangeRate,
		CustomerName:    req.CustomerName,
	})
}

func (s *Service) commit(ctx context.Context, req *CheckoutRequest, result *settlement.Settlement, cust *customer.Customer, pointsEarned int, createdBy uint) (*CheckoutResponse, error) {
	var sale Sale
	var duplicate bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IdempotencyKey != "" {
			var existing Sale
			lookupErr := tx.Preload("Items").Preload("Payments").Preload("Customer").
				Where("idempotency_key = ?", req.IdempotencyKey).First(&existing).Error
			if lookupErr == nil {
				sale = existing
				duplicate = true
				return nil
			}
			if lookupErr != gorm.ErrRecordNotFound {
				return fmt.Errorf("failed to check idempotency key: %w", lookupErr)
			}
		}

		sale = Sale{
			TerminalID:      req.TerminalID,
			IdempotencyKey:  req.IdempotencyKey,
			PaymentType:     result.PaymentType,
			Status:          result.Status,
			SubtotalUSD:     result.SubtotalUSD,
			DiscountPercent: result.DiscountPercent,
			DiscountUSD:     result.DiscountUSD,
			PointsRedeemed:  result.PointsRedeemed,
			PointsValueUSD:  result.PointsValueUSD,
			PointsEarned:    pointsEarned,
			NetTotalUSD:     result.NetTotalUSD,
			AmountPaidUSD:   result.AmountPaidUSD,
			DebtUSD:         result.DebtUSD,
			TotalVES:        result.TotalVES,
			AmountPaidVES:   result.AmountPaidVES,
			ExchangeRate:    result.ExchangeRate,
			CreatedBy:       createdBy,
		}
		if cust != nil {
			sale.CustomerID = &cust.ID
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		sale.Number = fmt.Sprintf("SALE-%s-%06d", time.Now().Format("20060102"), sale.ID)
		if err := tx.Model(&sale).Update("number", sale.Number).Error; err != nil {
			return fmt.Errorf("failed to set sale number: %w", err)
		}

		for _, item := range req.Items {
			saleItem := SaleItem{
				SaleID:       sale.ID,
				ProductID:    item.ProductID,
				Name:         item.Name,
				UnitPriceUSD: item.UnitPriceUSD,
				Quantity:     item.Quantity,
				LineTotalUSD: item.UnitPriceUSD * float64(item.Quantity),
			}
			if err := tx.Create(&saleItem).Error; err != nil {
				return fmt.Errorf("failed to create sale item: %w", err)
			}

			if err := inventory.ApplyMovement(tx, item.ProductID, inventory.MovementTypeOut,
				inventory.ReasonSale, item.Quantity, "sale", sale.ID, sale.Number, createdBy); err != nil {
				return err
			}
		}

		for _, entry := range paymentsFor(result, req.Breakdown) {
			payment := SalePayment{
				SaleID:   sale.ID,
				Channel:  entry.Channel,
				Currency: entry.Currency,
				Amount:   entry.Amount,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("failed to create sale payment: %w", err)
			}
		}

		if cust != nil {
			pointsDelta := pointsEarned - result.PointsRedeemed
			if pointsDelta != 0 {
				if err := tx.Model(&customer.Customer{}).Where("id = ?", cust.ID).
					UpdateColumn("points", gorm.Expr("points + ?", pointsDelta)).Error; err != nil {
					return fmt.Errorf("failed to update customer points: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	response := &CheckoutResponse{Sale: &sale, Duplicate: duplicate}
	if duplicate {
		return response, nil
	}

	// Post-commit debt sync. The sale is already durable; a failure here is
	// reported, not fatal.
	if cust != nil && sale.DebtUSD > 0 {
		if err := s.db.Model(&customer.Customer{}).Where("id = ?", cust.ID).
			UpdateColumn("debt_usd", gorm.Expr("debt_usd + ?", sale.DebtUSD)).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"sale":     sale.Number,
				"customer": cust.ID,
				"debt_usd": sale.DebtUSD,
			}).WithError(err).Warn("sale committed but customer debt total not updated")
			response.DebtSyncWarning = fmt.Sprintf(
				"sale %s committed, but the customer debt total could not be updated", sale.Number)
		}
	}

	full, err := s.GetSale(sale.ID)
	if err == nil {
		response.Sale = full
	}
	return response, nil
}

// paymentsFor expands a settlement into the payment rows to persist. Mixed
// sales store the breakdown as entered; the other types store one synthetic
// USD entry for the paid amount.
func paymentsFor(result *settlement.Settlement, breakdown []settlement.PaymentEntry) []settlement.PaymentEntry {
	if result.PaymentType == settlement.PaymentTypeMixed {
		return breakdown
	}
	if result.AmountPaidUSD <= 0 {
		return nil
	}
	return []settlement.PaymentEntry{{
		Channel:  "cash",
		Currency: settlement.CurrencyUSD,
		Amount:   result.AmountPaidUSD,
	}}
}

// GetSale retrieves a single sale with its lines and payments
func (s *Service) GetSale(id uint) (*Sale, error) {
	var sale Sale
	result := s.db.Preload("Items").Preload("Payments").Preload("Customer").
		Where("id = ?", id).First(&sale)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sale not found")
		}
		return nil, fmt.Errorf("failed to retrieve sale: %w", result.Error)
	}
	return &sale, nil
}

// GetSales retrieves sales with filtering and pagination
func (s *Service) GetSales(req *SaleListRequest) ([]Sale, int64, error) {
	var sales []Sale
	var total int64

	query := s.db.Model(&Sale{}).Preload("Items").Preload("Payments").Preload("Customer")
	if req.CustomerID > 0 {
		query = query.Where("customer_id = ?", req.CustomerID)
	}
	if req.PaymentType != "" {
		query = query.Where("payment_type = ?", req.PaymentType)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.TerminalID != "" {
		query = query.Where("terminal_id = ?", req.TerminalID)
	}
	if req.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", req.DateFrom); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if req.DateTo != "" {
		if to, err := time.Parse("2006-01-02", req.DateTo); err == nil {
			query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}
	if !req.Cancelled {
		query = query.Where("cancelled_at IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at desc").Offset(offset).Limit(req.Limit).Find(&sales).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	return sales, total, nil
}

// CancelSale reverses a committed sale: stock returns, point mutations are
// undone and any booked debt is removed from the customer's running total
func (s *Service) CancelSale(id uint, cancelledBy uint) (*Sale, error) {
	sale, err := s.GetSale(id)
	if err != nil {
		return nil, err
	}
	if !sale.CanBeCancelled() {
		return nil, fmt.Errorf("sale %s is already cancelled", sale.Number)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			if err := inventory.ApplyMovement(tx, item.ProductID, inventory.MovementTypeIn,
				inventory.ReasonSaleCancel, item.Quantity, "sale", sale.ID, sale.Number, cancelledBy); err != nil {
				return err
			}
		}

		if sale.CustomerID != nil {
			pointsDelta := sale.PointsRedeemed - sale.PointsEarned
			if pointsDelta != 0 {
				if err := tx.Model(&customer.Customer{}).Where("id = ?", *sale.CustomerID).
					UpdateColumn("points", gorm.Expr("GREATEST(points + ?, 0)", pointsDelta)).Error; err != nil {
					return fmt.Errorf("failed to restore customer points: %w", err)
				}
			}
			if sale.DebtUSD > 0 {
				if err := tx.Model(&customer.Customer{}).Where("id = ?", *sale.CustomerID).
					UpdateColumn("debt_usd", gorm.Expr("GREATEST(debt_usd - ?, 0)", sale.DebtUSD)).Error; err != nil {
					return fmt.Errorf("failed to reduce customer debt: %w", err)
				}
			}
		}

		now := time.Now().UTC()
		return tx.Model(&Sale{}).Where("id = ?", sale.ID).
			Update("cancelled_at", now).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetSale(id)
}
