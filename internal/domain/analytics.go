package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates the headline numbers of the dashboard.
type DashboardStats struct {
	TotalUsers     int
	TotalRevenue   decimal.Decimal
	TotalOrders    int
	ConversionRate decimal.Decimal
}

// RevenuePoint is one month of revenue.
type RevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
	Orders  int
}

// ChartPoint is a single named value of a chart series.
type ChartPoint struct {
	Name  string
	Value int
}
