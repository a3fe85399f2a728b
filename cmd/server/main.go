package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/config"
	"comanda_manager/internal/database"
	"comanda_manager/internal/handlers"
	"comanda_manager/internal/repository"
	"comanda_manager/internal/services"
	"comanda_manager/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the persisted-collection store
	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(store)
	productRepo := repository.NewProductRepository(store)

	// Initialize services
	ledgerService := services.NewLedgerService(orderRepo)
	productService := services.NewProductService(productRepo)
	reportService := services.NewReportService(ledgerService, productService)
	backupService := services.NewBackupService(orderRepo, productRepo)

	if cfg.SeedDefaultProducts {
		if err := productService.SeedDefaults(); err != nil {
			log.Printf("Warning: Failed to seed default products: %v", err)
		}
	}

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(ledgerService, productService)
	productHandler := handlers.NewProductHandler(productService)
	reportHandler := handlers.NewReportHandler(reportService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.GetOpenOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/items", orderHandler.AddItem)
		api.POST("/orders/:id/items/:item_id/cancel", orderHandler.CancelItem)
		api.DELETE("/orders/:id/items/:item_id", orderHandler.RemoveItem)
		api.PUT("/orders/:id/discount", orderHandler.SetDiscount)
		api.POST("/orders/:id/payments", orderHandler.AddPartialPayment)
		api.DELETE("/orders/:id/payments/:payment_id", orderHandler.RemovePartialPayment)
		api.GET("/orders/:id/balance", orderHandler.GetRemainingBalance)
		api.POST("/orders/:id/pay", orderHandler.PayOrder)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		api.GET("/orders/:id/receipt", reportHandler.GetReceipt)
		api.GET("/orders/:id/kitchen-ticket", reportHandler.GetKitchenTicket)

		api.GET("/history", orderHandler.GetHistory)
		api.DELETE("/history/:id", orderHandler.DeleteFromHistory)
		api.GET("/history/conference", reportHandler.GetConference)

		api.GET("/products", productHandler.GetProducts)
		api.POST("/products", productHandler.AddProduct)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.GET("/reports/today-total", reportHandler.GetTodayTotal)
		api.GET("/reports/daily-sales", reportHandler.GetDailySales)
		api.GET("/reports/payment-methods", reportHandler.GetPaymentMethodTotals)
		api.GET("/reports/top-products", reportHandler.GetTopProducts)

		api.GET("/backup/export", backupHandler.Export)
		api.POST("/backup/import", backupHandler.Import)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(db), nil
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
