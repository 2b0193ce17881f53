// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/domain/analytics"
	"gorm.io/gorm"
)

// AnalyticsHandler handles reporting endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(db *gorm.DB, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(db),
		config:           cfg,
	}
}

// parsePeriod reads from/to query params, defaulting to the last 30 days
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'from' date, expected YYYY-MM-DD",
			})
			return from, to, false
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'to' date, expected YYYY-MM-DD",
			})
			return from, to, false
		}
		to = parsed.AddDate(0, 0, 1)
	}

	return from, to, true
}

// GetDailySummary handles GET /analytics/daily
func (h *AnalyticsHandler) GetDailySummary(c *gin.Context) {
	day := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'date', expected YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	summary, err := h.analyticsService.DailySummary(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute daily summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Daily summary retrieved successfully",
		"data":    summary,
	})
}

// GetSummary handles GET /analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Summary(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute summary",
		})
		return
	}

	breakdown, err := h.analyticsService.ByPaymentType(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute payment type breakdown",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Summary retrieved successfully",
		"data": gin.H{
			"summary":         summary,
			"by_payment_type": breakdown,
		},
	})
}

// GetTopProducts handles GET /analytics/top-products
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.analyticsService.TopProducts(from, to, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to rank products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Top products retrieved successfully",
		"data":    products,
	})
}

// GetDebtors handles GET /analytics/debtors
func (h *AnalyticsHandler) GetDebtors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	debtors, err := h.analyticsService.OutstandingDebt(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list debtors",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Debtors retrieved successfully",
		"data":    debtors,
	})
}

// GetLowStock handles GET /analytics/low-stock
func (h *AnalyticsHandler) GetLowStock(c *gin.Context) {
	products, err := h.analyticsService.LowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list low stock products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Low stock products retrieved successfully",
		"data":    products,
	})
}
