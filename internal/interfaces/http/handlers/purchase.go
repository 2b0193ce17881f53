// internal/interfaces/http/handlers/purchase.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/purchase"
	"github.com/your-org/retailpos-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// PurchaseHandler handles purchasing endpoints
type PurchaseHandler struct {
	purchaseService *purchase.Service
	config          *config.Config
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(db *gorm.DB, cfg *config.Config) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchase.NewService(db),
		config:          cfg,
	}
}

// GetPurchases handles GET /purchases
func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	var req purchase.PurchaseListRequest
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

	purchases, total, err := h.purchaseService.GetPurchases(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve purchases",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchases retrieved successfully",
		"data": gin.H{
			"purchases": purchases,
			"total":     total,
			"page":      req.Page,
			"limit":     req.Limit,
		},
	})
}

// GetPurchase handles GET /purchases/:id
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.purchaseService.GetPurchase(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase retrieved successfully",
		"data":    p,
	})
}

// CreatePurchase handles POST /purchases (admin only)
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req purchase.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.purchaseService.CreatePurchase(&req, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Purchase created successfully",
		"data":    created,
	})
}

// ReceivePurchase handles POST /purchases/:id/receive (admin only)
func (h *PurchaseHandler) ReceivePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	received, err := h.purchaseService.Receive(id, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase received successfully",
		"data":    received,
	})
}

// VoidPurchase handles POST /purchases/:id/void (admin only)
func (h *PurchaseHandler) VoidPurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	voided, err := h.purchaseService.Void(id, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase voided successfully",
		"data":    voided,
	})
}
