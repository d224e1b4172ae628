package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jjpos/jjpos-api/internal/application/service"
	"github.com/jjpos/jjpos-api/internal/config"
	"github.com/jjpos/jjpos-api/internal/infrastructure/database"
	"github.com/jjpos/jjpos-api/internal/infrastructure/repository"
	"github.com/jjpos/jjpos-api/internal/presentation/http/handler"
	"github.com/jjpos/jjpos-api/internal/presentation/http/routes"
	"github.com/jjpos/jjpos-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo catalog data when requested
	if cfg.POS.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	customerPriceRepo := repository.NewCustomerPriceRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Expired idempotency keys only accumulate; sweep them hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to delete expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize services
	pricingService := service.NewPricingService(customerPriceRepo)
	cartService := service.NewCartService(productRepo, customerRepo, pricingService, cfg.POS.SessionTTL)
	checkoutService := service.NewCheckoutService(saleRepo, saleItemRepo, cartService)
	receiptService := service.NewReceiptService(saleRepo, customerRepo, cfg.POS.StoreName)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	customerService := service.NewCustomerService(customerRepo, customerPriceRepo, productRepo)
	salesService := service.NewSalesService(saleRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(receiptPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		POS: handler.NewPOSHandler(
			cartService,
			checkoutService,
			receiptService,
			printerService,
			cfg.POS.DefaultExchangeRate,
		),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Customer: handler.NewCustomerHandler(customerService),
		Sale: handler.NewSaleHandler(
			salesService,
			receiptService,
			printerService,
			cfg.POS.DefaultExchangeRate,
		),
		Dashboard: handler.NewDashboardHandler(dashboardService, printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
