package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/admin-console/internal/domain"
)

// StatsResponse holds the dashboard headline numbers. Decimals serialize as
// JSON strings.
type StatsResponse struct {
	TotalUsers     int             `json:"total_users"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int             `json:"total_orders"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
}

// RevenueResponse is one month of sales.
type RevenueResponse struct {
	Month             string          `json:"month"`
	Revenue           decimal.Decimal `json:"revenue"`
	Orders            int             `json:"orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// ChartPointResponse is a named chart value.
type ChartPointResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// NewStatsResponse maps dashboard stats.
func NewStatsResponse(s domain.DashboardStats) StatsResponse {
	return StatsResponse(s)
}

// NewChartResponse maps chart points.
func NewChartResponse(points []domain.ChartPoint) []ChartPointResponse {
	out := make([]ChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPointResponse(p))
	}
	return out
}
