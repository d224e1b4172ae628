package service

import (
	"context"
	"time"

	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/currency"
)

// DashboardService aggregates sales figures for the dashboard screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// MonthlyTotal is one month's sales total in dollars
type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// CategoryTotal is one category's sales total in dollars
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DashboardStats holds the figures shown on the dashboard
type DashboardStats struct {
	DailySales    float64         `json:"daily_sales"`
	MonthlySales  []MonthlyTotal  `json:"monthly_sales"`
	CategorySales []CategoryTotal `json:"category_sales"`
}

// GetStats returns today's sales, this year's monthly totals and the
// sales-by-category breakdown
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	daily, err := s.analyticsRepo.SalesTotalBetween(ctx, dayStart, now)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.MonthlySalesForYear(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	byCategory, err := s.analyticsRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		DailySales:    currency.DollarsFromCents(daily),
		MonthlySales:  make([]MonthlyTotal, 0, len(monthly)),
		CategorySales: make([]CategoryTotal, 0, len(byCategory)),
	}
	for _, m := range monthly {
		stats.MonthlySales = append(stats.MonthlySales, MonthlyTotal{
			Month: m.Month.String(),
			Total: currency.DollarsFromCents(m.Total),
		})
	}
	for _, c := range byCategory {
		stats.CategorySales = append(stats.CategorySales, CategoryTotal{
			Category: c.Category,
			Total:    currency.DollarsFromCents(c.Total),
		})
	}
	return stats, nil
}
