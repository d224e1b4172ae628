package repository

import (
	"context"
	"time"
)

// MonthlySales is one month's aggregated sales total
type MonthlySales struct {
	Month time.Month `json:"month"`
	Total int64      `json:"-"` // Stored in cents
}

// CategorySales is the aggregated sales total for one category
type CategorySales struct {
	Category string `json:"category"`
	Total    int64  `json:"-"` // Stored in cents
}

// AnalyticsRepository provides the aggregate queries behind the dashboard
type AnalyticsRepository interface {
	SalesTotalBetween(ctx context.Context, start, end time.Time) (int64, error)
	MonthlySalesForYear(ctx context.Context, year int) ([]MonthlySales, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}
