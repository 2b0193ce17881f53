// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/retailpos-backend/internal/config"
	"github.com/your-org/retailpos-backend/internal/interfaces/http/handlers"
	"github.com/your-org/retailpos-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupProductRoutes(rg, db, cfg)
	SetupCustomerRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, redisClient, cfg)
	SetupSaleRoutes(rg, db, redisClient, cfg)
	SetupRateRoutes(rg, db, redisClient, cfg)
	SetupSupplierRoutes(rg, db, cfg)
	SetupPurchaseRoutes(rg, db, cfg)
	SetupInventoryRoutes(rg, db, cfg)
	SetupAnalyticsRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/me", authHandler.GetProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}

	// Staff management is admin territory
	admin := rg.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("", authHandler.GetUsers)
		admin.POST("", authHandler.Register)
		admin.PUT("/:id/active", authHandler.SetUserActive)
	}
}

// SetupProductRoutes sets up product and category routes
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware(cfg))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/low-stock", productHandler.GetLowStockProducts)
		products.GET("/barcode/:barcode", productHandler.GetProductByBarcode)
		products.GET("/:id", productHandler.GetProduct)

		adminOnly := products.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.POST("", productHandler.CreateProduct)
			adminOnly.PUT("/:id", productHandler.UpdateProduct)
			adminOnly.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	categories := rg.Group("/categories")
	categories.Use(middleware.AuthMiddleware(cfg))
	{
		categories.GET("", productHandler.GetCategories)

		adminOnly := categories.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.POST("", productHandler.CreateCategory)
			adminOnly.DELETE("/:id", productHandler.DeleteCategory)
		}
	}
}

// SetupCustomerRoutes sets up customer routes
func SetupCustomerRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	customerHandler := handlers.NewCustomerHandler(db, cfg)

	customers := rg.Group("/customers")
	customers.Use(middleware.AuthMiddleware(cfg))
	{
		customers.GET("", customerHandler.GetCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.POST("/:id/debt-payments", customerHandler.PayDebt)
		customers.GET("/:id/debt-payments", customerHandler.GetDebtPayments)

		adminOnly := customers.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.PUT("/:id/points", customerHandler.AdjustPoints)
		}
	}
}

// SetupCartRoutes sets up terminal cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("/:terminal_id", cartHandler.GetCart)
		cart.POST("/:terminal_id/items", cartHandler.AddItem)
		cart.PUT("/:terminal_id/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/:terminal_id", cartHandler.ClearCart)
	}
}

// SetupSaleRoutes sets up checkout and sale routes
func SetupSaleRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	saleHandler := handlers.NewSaleHandler(db, redisClient, cfg)

	sales := rg.Group("/sales")
	sales.Use(middleware.AuthMiddleware(cfg))
	{
		sales.POST("/checkout", saleHandler.Checkout)
		sales.GET("", saleHandler.GetSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.GET("/:id/receipt", saleHandler.GetReceipt)

		adminOnly := sales.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.POST("/:id/cancel", saleHandler.CancelSale)
		}
	}
}

// SetupRateRoutes sets up exchange rate routes
func SetupRateRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	rateHandler := handlers.NewRateHandler(db, redisClient, cfg)

	rates := rg.Group("/rates")
	rates.Use(middleware.AuthMiddleware(cfg))
	{
		rates.GET("/current", rateHandler.GetCurrentRate)
		rates.GET("/history", rateHandler.GetRateHistory)

		adminOnly := rates.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.POST("", rateHandler.SetRate)
		}
	}
}

// SetupSupplierRoutes sets up supplier routes
func SetupSupplierRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	supplierHandler := handlers.NewSupplierHandler(db, cfg)

	suppliers := rg.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware(cfg))
	suppliers.Use(middleware.AdminMiddleware())
	{
		suppliers.GET("", supplierHandler.GetSuppliers)
		suppliers.GET("/:id", supplierHandler.GetSupplier)
		suppliers.POST("", supplierHandler.CreateSupplier)
		suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
		suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
	}
}

// SetupPurchaseRoutes sets up purchasing routes
func SetupPurchaseRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	purchaseHandler := handlers.NewPurchaseHandler(db, cfg)

	purchases := rg.Group("/purchases")
	purchases.Use(middleware.AuthMiddleware(cfg))
	purchases.Use(middleware.AdminMiddleware())
	{
		purchases.GET("", purchaseHandler.GetPurchases)
		purchases.GET("/:id", purchaseHandler.GetPurchase)
		purchases.POST("", purchaseHandler.CreatePurchase)
		purchases.POST("/:id/receive", purchaseHandler.ReceivePurchase)
		purchases.POST("/:id/void", purchaseHandler.VoidPurchase)
	}
}

// SetupInventoryRoutes sets up stock ledger routes
func SetupInventoryRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	inventoryHandler := handlers.NewInventoryHandler(db, cfg)

	inventory := rg.Group("/inventory")
	inventory.Use(middleware.AuthMiddleware(cfg))
	{
		inventory.GET("/movements", inventoryHandler.GetMovements)

		adminOnly := inventory.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.POST("/adjust", inventoryHandler.AdjustStock)
		}
	}
}

// SetupAnalyticsRoutes sets up reporting routes
func SetupAnalyticsRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg)

	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware(cfg))
	{
		analytics.GET("/daily", analyticsHandler.GetDailySummary)
		analytics.GET("/low-stock", analyticsHandler.GetLowStock)

		adminOnly := analytics.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.GET("/summary", analyticsHandler.GetSummary)
			adminOnly.GET("/top-products", analyticsHandler.GetTopProducts)
			adminOnly.GET("/debtors", analyticsHandler.GetDebtors)
		}
	}
}
