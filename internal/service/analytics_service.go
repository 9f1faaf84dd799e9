package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/repository"
)

// historicalUserBaseline counts accounts that predate the managed directory.
const historicalUserBaseline = 12538

// AnalyticsService serves the dashboard and analytics chart series.
type AnalyticsService struct {
	users   repository.UserRepository
	latency time.Duration
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(cfg config.DirectoryConfig, users repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{users: users, latency: cfg.Latency()}
}

// Stats returns the dashboard headline numbers.
func (s *AnalyticsService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return domain.DashboardStats{}, err
	}
	members, err := s.users.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		TotalUsers:     historicalUserBaseline + members,
		TotalRevenue:   decimal.NewFromInt(89432),
		TotalOrders:    1834,
		ConversionRate: decimal.RequireFromString("3.2"),
	}, nil
}

// Revenue returns monthly revenue and order counts.
func (s *AnalyticsService) Revenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return []domain.RevenuePoint{
		{Month: "Jan", Revenue: decimal.NewFromInt(12000), Orders: 145},
		{Month: "Feb", Revenue: decimal.NewFromInt(15000), Orders: 178},
		{Month: "Mar", Revenue: decimal.NewFromInt(18000), Orders: 203},
		{Month: "Apr", Revenue: decimal.NewFromInt(22000), Orders: 234},
		{Month: "May", Revenue: decimal.NewFromInt(25000), Orders: 267},
		{Month: "Jun", Revenue: decimal.NewFromInt(28000), Orders: 289},
	}, nil
}

// AverageOrderValue returns revenue divided by orders for each month,
// rounded to cents.
func AverageOrderValue(points []domain.RevenuePoint) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		if p.Orders == 0 {
			out[p.Month] = decimal.Zero
			continue
		}
		out[p.Month] = p.Revenue.DivRound(decimal.NewFromInt(int64(p.Orders)), 2)
	}
	return out
}

// UserGrowth returns weekly signups.
func (s *AnalyticsService) UserGrowth(ctx context.Context) ([]domain.ChartPoint, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return []domain.ChartPoint{
		{Name: "Week 1", Value: 400},
		{Name: "Week 2", Value: 600},
		{Name: "Week 3", Value: 800},
		{Name: "Week 4", Value: 1200},
		{Name: "Week 5", Value: 1600},
		{Name: "Week 6", Value: 2000},
	}, nil
}

// Categories returns the percentage share of sales per category.
func (s *AnalyticsService) Categories(ctx context.Context) ([]domain.ChartPoint, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return []domain.ChartPoint{
		{Name: "Electronics", Value: 35},
		{Name: "Clothing", Value: 25},
		{Name: "Books", Value: 20},
		{Name: "Home & Garden", Value: 15},
		{Name: "Sports", Value: 5},
	}, nil
}
