package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jjpos/jjpos-api/internal/config"
	domainRepo "github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/internal/presentation/http/handler"
	"github.com/jjpos/jjpos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	POS       *handler.POSHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Customer  *handler.CustomerHandler
	Sale      *handler.SaleHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Per-terminal rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerPOSRoutes(v1, h, deps)
		registerProductRoutes(v1, h)
		registerCategoryRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSaleRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.Stats)
		v1.GET("/printer/status", h.Dashboard.PrinterStatus)
	}

	return router
}

func registerPOSRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	sessions := v1.Group("/pos/sessions")
	{
		sessions.POST("", h.POS.CreateSession)
		sessions.GET("/:sessionId", h.POS.GetCart)
		sessions.PUT("/:sessionId/customer", h.POS.SetCustomer)
		sessions.POST("/:sessionId/lines", h.POS.AddLine)
		sessions.PUT("/:sessionId/lines/:productId", h.POS.UpdateLine)
		sessions.DELETE("/:sessionId/lines/:productId", h.POS.RemoveLine)
		sessions.DELETE("/:sessionId/lines", h.POS.ClearCart)
		// Checkout uses idempotency middleware so a blind retry of a
		// timed-out request cannot create a second sale
		sessions.POST("/:sessionId/checkout", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.POS.Checkout)
		sessions.POST("/:sessionId/checkout/retry", h.POS.RetryCheckout)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCategoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/prices", h.Customer.ListPrices)
	}

	prices := v1.Group("/customer-prices")
	{
		prices.POST("", h.Customer.CreatePrice)
		prices.PUT("/:id", h.Customer.UpdatePrice)
		prices.DELETE("/:id", h.Customer.DeletePrice)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.Receipt)
		sales.POST("/:id/print", h.Sale.Print)
	}
}
