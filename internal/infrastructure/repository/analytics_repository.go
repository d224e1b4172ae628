package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	domainRepo "github.com/jjpos/jjpos-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SalesTotalBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Select("SUM(total)").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *analyticsRepository) MonthlySalesForYear(ctx context.Context, year int) ([]domainRepo.MonthlySales, error) {
	var rows []struct {
		Month int
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, SUM(total) AS total").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domainRepo.MonthlySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, domainRepo.MonthlySales{
			Month: time.Month(row.Month),
			Total: row.Total,
		})
	}
	return result, nil
}

func (r *analyticsRepository) SalesByCategory(ctx context.Context) ([]domainRepo.CategorySales, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.SaleItem{}).
		Select("categories.name AS category, SUM(sale_items.price * sale_items.quantity) AS total").
		Joins("JOIN product_categories pc ON pc.product_id = sale_items.product_id").
		Joins("JOIN categories ON categories.id = pc.category_id").
		Group("categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domainRepo.CategorySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, domainRepo.CategorySales{
			Category: row.Category,
			Total:    row.Total,
		})
	}
	return result, nil
}
