package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/repository"
)

func TestAnalyticsStatsIncludesDirectoryMembers(t *testing.T) {
	repo := repository.NewMemoryUserRepository(repository.SeedUsers())
	svc := NewAnalyticsService(config.DirectoryConfig{}, repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12543, stats.TotalUsers)
	assert.Equal(t, 1834, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(89432)))
	assert.Equal(t, "3.2", stats.ConversionRate.String())
}

func TestAnalyticsSeries(t *testing.T) {
	svc := NewAnalyticsService(config.DirectoryConfig{}, repository.NewMemoryUserRepository(nil))
	ctx := context.Background()

	revenue, err := svc.Revenue(ctx)
	require.NoError(t, err)
	require.Len(t, revenue, 6)
	assert.Equal(t, "Jan", revenue[0].Month)

	growth, err := svc.UserGrowth(ctx)
	require.NoError(t, err)
	assert.Len(t, growth, 6)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	total := 0
	for _, c := range categories {
		total += c.Value
	}
	assert.Equal(t, 100, total)
}

func TestAverageOrderValue(t *testing.T) {
	avg := AverageOrderValue([]domain.RevenuePoint{
		{Month: "Jan", Revenue: decimal.NewFromInt(12000), Orders: 145},
		{Month: "Feb", Revenue: decimal.NewFromInt(100), Orders: 0},
	})
	assert.Equal(t, "82.76", avg["Jan"].StringFixed(2))
	assert.True(t, avg["Feb"].IsZero())
}
