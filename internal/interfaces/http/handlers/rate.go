// internal/interfaces/http/handlers/rate.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/rate"
	"github.com/your-org/retailpos-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// RateHandler handles exchange rate endpoints
type RateHandler struct {
	rateService *rate.Service
	config      *config.Config
}

// NewRateHandler creates a new rate handler
func NewRateHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *RateHandler {
	return &RateHandler{
		rateService: rate.NewService(db, redisClient, cfg),
		config:      cfg,
	}
}

// GetCurrentRate handles GET /rates/current
func (h *RateHandler) GetCurrentRate(c *gin.Context) {
	current, err := h.rateService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve exchange rate",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exchange rate retrieved successfully",
		"data": gin.H{
			"rate":  current,
			"base":  h.config.Business.BaseCurrency,
			"local": h.config.Business.LocalCurrency,
		},
	})
}

// SetRate handles POST /rates (admin only)
func (h *RateHandler) SetRate(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req struct {
		Rate   float64 `json:"rate" binding:"required,gt=0"`
		Source string  `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	entry, err := h.rateService.Set(c.Request.Context(), req.Rate, req.Source, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Exchange rate updated successfully",
		"data":    entry,
	})
}

// GetRateHistory handles GET /rates/history
func (h *RateHandler) GetRateHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.rateService.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve rate history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rate history retrieved successfully",
		"data":    entries,
	})
}
