// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles terminal cart business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a quantity change; zero removes the item
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// GetCart retrieves the terminal's cart, returning an empty cart when none
// exists yet
func (s *Service) GetCart(ctx context.Context, terminalID string) (*TerminalCart, error) {
	if terminalID == "" {
		return nil, fmt.Errorf("terminal ID required")
	}

	data, err := s.redisClient.Get(ctx, s.key(terminalID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &TerminalCart{
			TerminalID: terminalID,
			Items:      []CartItem{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var terminalCart TerminalCart
	if err := json.Unmarshal([]byte(data), &terminalCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &terminalCart, nil
}

// AddItem adds a product to the cart, merging with an existing line. The
// quantity is validated against the product's current stock.
func (s *Service) AddItem(ctx context.Context, terminalID string, req *AddItemRequest) (*TerminalCart, error) {
	var prod product.Product
	if err := s.db.Where("id = ? AND is_active = ?", req.ProductID, true).First(&prod).Error; err != nil {
		return nil, fmt.Errorf("product not found or inactive")
	}

	terminalCart, err := s.GetCart(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range terminalCart.Items {
		if terminalCart.Items[i].ProductID == req.ProductID {
			newQuantity := terminalCart.Items[i].Quantity + req.Quantity
			if newQuantity > prod.Stock {
				return nil, fmt.Errorf("insufficient stock for '%s': have %d, requested %d", prod.Name, prod.Stock, newQuantity)
			}
			terminalCart.Items[i].Quantity = newQuantity
			merged = true
			break
		}
	}

	if !merged {
		if req.Quantity > prod.Stock {
			return nil, fmt.Errorf("insufficient stock for '%s': have %d, requested %d", prod.Name, prod.Stock, req.Quantity)
		}
		terminalCart.Items = append(terminalCart.Items, CartItem{
			ProductID:    prod.ID,
			Name:         prod.Name,
			Barcode:      prod.Barcode,
			UnitPriceUSD: prod.PriceUSD,
			Quantity:     req.Quantity,
			AddedAt:      time.Now().UTC(),
		})
	}

	if err := s.save(ctx, terminalID, terminalCart); err != nil {
		return nil, err
	}
	return terminalCart, nil
}

// UpdateItem sets a line's quantity; zero removes the line
func (s *Service) UpdateItem(ctx context.Context, terminalID string, productID uint, req *UpdateItemRequest) (*TerminalCart, error) {
	terminalCart, err := s.GetCart(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range terminalCart.Items {
		if terminalCart.Items[i].ProductID != productID {
			continue
		}
		found = true

		if req.Quantity == 0 {
			terminalCart.Items = append(terminalCart.Items[:i], terminalCart.Items[i+1:]...)
			break
		}

		var prod product.Product
		if err := s.db.Where("id = ?", productID).First(&prod).Error; err != nil {
			return nil, fmt.Errorf("product not found")
		}
		if req.Quantity > prod.Stock {
			return nil, fmt.Errorf("insufficient stock for '%s': have %d, requested %d", prod.Name, prod.Stock, req.Quantity)
		}
		terminalCart.Items[i].Quantity = req.Quantity
		break
	}

	if !found {
		return nil, fmt.Errorf("item not found in cart")
	}

	if err := s.save(ctx, terminalID, terminalCart); err != nil {
		return nil, err
	}
	return terminalCart, nil
}

// ClearCart discards the terminal's cart
func (s *Service) ClearCart(ctx context.Context, terminalID string) error {
	if terminalID == "" {
		return fmt.Errorf("terminal ID required")
	}
	return s.redisClient.Del(ctx, s.key(terminalID)).Err()
}

func (s *Service) save(ctx context.Context, terminalID string, terminalCart *TerminalCart) error {
	terminalCart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(terminalCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.redisClient.Set(ctx, s.key(terminalID), data, s.config.Business.CartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *Service) key(terminalID string) string {
	return fmt.Sprintf("cart:terminal:%s", terminalID)
}
