package database

import (
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jjpos/jjpos-api/internal/config"
	"github.com/jjpos/jjpos-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Product{},

		// Customer entities
		&entity.Customer{},
		&entity.CustomerPrice{},

		// Transaction entities
		&entity.Sale{},
		&entity.SaleItem{},

		// System entities
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDemoData fills an empty catalog with fake categories, products and
// customers for development. It never touches a catalog that already has
// products.
func SeedDemoData(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return nil
	}

	log.Println("Seeding demo catalog...")

	categories := make([]entity.Category, 0, 4)
	for _, name := range []string{"Drinks", "Food", "Snacks", "Desserts"} {
		categories = append(categories, entity.Category{Name: name})
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := make([]entity.Product, 0, 24)
	for i := 0; i < 24; i++ {
		imageURL := gofakeit.URL()
		products = append(products, entity.Product{
			Name:       gofakeit.ProductName(),
			Price:      int64(gofakeit.Number(50, 2500)), // 0.50 to 25.00 USD
			ImageURL:   &imageURL,
			Categories: []entity.Category{categories[i%len(categories)]},
		})
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	customers := make([]entity.Customer, 0, 8)
	for i := 0; i < 8; i++ {
		phone := gofakeit.Phone()
		customers = append(customers, entity.Customer{
			Name:  gofakeit.Name(),
			Phone: &phone,
		})
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	// A few negotiated prices so the override path is visible out of the box
	for i := 0; i < 6; i++ {
		product := products[gofakeit.Number(0, len(products)-1)]
		discounted := product.Price * int64(gofakeit.Number(50, 95)) / 100
		price := entity.CustomerPrice{
			CustomerID: customers[i%len(customers)].ID,
			ProductID:  product.ID,
			Price:      discounted,
		}
		if err := db.Create(&price).Error; err != nil {
			// unique (customer, product) pair already seeded; skip
			continue
		}
	}

	log.Println("Demo catalog seeded")
	return nil
}
