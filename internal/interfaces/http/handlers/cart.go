// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/cart"
	"github.com/your-org/retailpos-backend/internal/domain/rate"
	"gorm.io/gorm"
)

// CartHandler handles terminal cart endpoints
type CartHandler struct {
	cartService *cart.Service
	rateService *rate.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, redisClient, cfg),
		rateService: rate.NewService(db, redisClient, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart/:terminal_id
func (h *CartHandler) GetCart(c *gin.Context) {
	terminalID := c.Param("terminal_id")

	terminalCart, err := h.cartService.GetCart(c.Request.Context(), terminalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
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

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"cart":   terminalCart,
			"totals": terminalCart.CalculateTotals(exchangeRate),
		},
	})
}

// AddItem handles POST /cart/:terminal_id/items
func (h *CartHandler) AddItem(c *gin.Context) {
	terminalID := c.Param("terminal_id")

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	terminalCart, err := h.cartService.AddItem(c.Request.Context(), terminalID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    terminalCart,
	})
}

// UpdateItem handles PUT /cart/:terminal_id/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	terminalID := c.Param("terminal_id")
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	terminalCart, err := h.cartService.UpdateItem(c.Request.Context(), terminalID, productID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
		"data":    terminalCart,
	})
}

// ClearCart handles DELETE /cart/:terminal_id
func (h *CartHandler) ClearCart(c *gin.Context) {
	terminalID := c.Param("terminal_id")

	if err := h.cartService.ClearCart(c.Request.Context(), terminalID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
