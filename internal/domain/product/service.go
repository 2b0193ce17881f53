// internal/domain/product/service.go
package product

import (
	"fmt"

	"github.com/your-org/retailpos-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Barcode           string  `json:"barcode" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	PriceUSD          float64 `json:"price_usd" binding:"required,gte=0"`
	CostUSD           float64 `json:"cost_usd" binding:"gte=0"`
	CategoryID        *uint   `json:"category_id"`
	Stock             int     `json:"stock" binding:"gte=0"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Unit              string  `json:"unit"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	PriceUSD          *float64 `json:"price_usd,omitempty"`
	CostUSD           *float64 `json:"cost_usd,omitempty"`
	CategoryID        *uint    `json:"category_id,omitempty"`
	LowStockThreshold *int     `json:"low_stock_threshold,omitempty"`
	Unit              *string  `json:"unit,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Search     string `form:"search"`
	CategoryID uint   `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	Inactive   bool   `form:"inactive"`
}

// ProductListResponse represents products with pagination
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	var existing Product
	if err := s.db.Where("barcode = ?", req.Barcode).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("product with barcode %s already exists", req.Barcode)
	}

	unit := req.Unit
	if unit == "" {
		unit = "unit"
	}
	threshold := req.LowStockThreshold
	if threshold <= 0 {
		threshold = 5
	}

	prod := Product{
		Barcode:           req.Barcode,
		Name:              req.Name,
		Description:       req.Description,
		PriceUSD:          req.PriceUSD,
		CostUSD:           req.CostUSD,
		CategoryID:        req.CategoryID,
		Stock:             req.Stock,
		LowStockThreshold: threshold,
		Unit:              unit,
		IsActive:          true,
	}

	if err := s.db.Create(&prod).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &prod, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var prod Product
	result := s.db.Preload("Category").Where("id = ?", id).First(&prod)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &prod, nil
}

// GetProductByBarcode retrieves a single product by barcode (scanner lookups)
func (s *Service) GetProductByBarcode(barcode string) (*Product, error) {
	var prod Product
	result := s.db.Preload("Category").Where("barcode = ? AND is_active = ?", barcode, true).First(&prod)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &prod, nil
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductListResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).Preload("Category")

	if !req.Inactive {
		query = query.Where("is_active = ?", true)
	}

	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("name ILIKE ? OR barcode ILIKE ?", like, like)
	}

	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	if req.LowStock {
		query = query.Where("stock <= low_stock_threshold")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("name asc").Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &ProductListResponse{
		Products: products,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// UpdateProduct updates product fields
func (s *Service) UpdateProduct(id uint, req *UpdateProductRequest) (*Product, error) {
	prod, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PriceUSD != nil {
		if *req.PriceUSD < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		updates["price_usd"] = *req.PriceUSD
	}
	if req.CostUSD != nil {
		updates["cost_usd"] = *req.CostUSD
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.LowStockThreshold != nil {
		updates["low_stock_threshold"] = *req.LowStockThreshold
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return prod, nil
	}

	if err := s.db.Model(prod).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(id)
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// GetLowStockProducts lists active products at or below their threshold
func (s *Service) GetLowStockProducts() ([]Product, error) {
	var products []Product
	err := s.db.
		Where("is_active = ? AND stock <= low_stock_threshold", true).
		Order("stock asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low stock products: %w", err)
	}
	return products, nil
}

// Category operations

// CreateCategory creates a new category
func (s *Service) CreateCategory(name, description string) (*Category, error) {
	category := Category{
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// GetCategories lists active categories
func (s *Service) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Where("is_active = ?", true).Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory soft-deletes a category; its products keep a null category
func (s *Service) DeleteCategory(id uint) error {
	result := s.db.Delete(&Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}
