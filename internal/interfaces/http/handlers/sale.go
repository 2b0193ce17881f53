// internal/interfaces/http/handlers/sale.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/cart"
	"github.com/your-org/retailpos-backend/internal/domain/customer"
	"github.com/your-org/retailpos-backend/internal/domain/rate"
	"github.com/your-org/retailpos-backend/internal/domain/sale"
	"github.com/your-org/retailpos-backend/internal/domain/settlement"
	"github.com/your-org/retailpos-backend/internal/interfaces/http/middleware"
	"github.com/your-org/retailpos-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SaleHandler handles checkout and sale endpoints
type SaleHandler struct {
	saleService *sale.Service
	rateService *rate.Service
	cartService *cart.Service
	pdfService  *pdf.Service
	config      *config.Config
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *SaleHandler {
	customerService := customer.NewService(db, cfg)
	return &SaleHandler{
		saleService: sale.NewService(db, customerService, cfg),
		rateService: rate.NewService(db, redisClient, cfg),
		cartService: cart.NewService(db, redisClient, cfg),
		pdfService:  pdf.NewService(cfg),
		config:      cfg,
	}
}

// Checkout handles POST /sales/checkout
func (h *SaleHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req sale.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	exchangeRate, err := h.rateService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve exchange rate",
		})
		return
	}

	response, err := h.saleService.Checkout(c.Request.Context(), &req, exchangeRate, userID)
	if err != nil {
		if settlement.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	// The terminal cart is only discarded once the sale is durable
	if req.TerminalID != "" && !response.Duplicate {
		if err := h.cartService.ClearCart(c.Request.Context(), req.TerminalID); err != nil {
			logrus.WithField("terminal", req.TerminalID).
				WithError(err).Warn("failed to clear terminal cart after checkout")
		}
	}

	status := http.StatusCreated
	if response.Duplicate {
		status = http.StatusOK
	}

	c.JSON(status, gin.H{
		"message": "Sale committed successfully",
		"data":    response,
	})
}

// GetSales handles GET /sales
func (h *SaleHandler) GetSales(c *gin.Context) {
	var req sale.SaleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	sales, total, err := h.saleService.GetSales(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve sales",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sales retrieved successfully",
		"data": gin.H{
			"sales": sales,
			"total": total,
			"page":  req.Page,
			"limit": req.Limit,
		},
	})
}

// GetSale handles GET /sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.saleService.GetSale(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale retrieved successfully",
		"data": gin.H{
			"sale":             s,
			"display_payments": sale.DisplayPayments(s),
		},
	})
}

// CancelSale handles POST /sales/:id/cancel (admin only)
func (h *SaleHandler) CancelSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	cancelled, err := h.saleService.CancelSale(id, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale cancelled successfully",
		"data":    cancelled,
	})
}

// GetReceipt handles GET /sales/:id/receipt
func (h *SaleHandler) GetReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.saleService.GetSale(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	buf, err := h.pdfService.GenerateReceipt(s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", s.Number))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
