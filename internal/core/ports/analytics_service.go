package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// AnalyticsService computes read-only aggregates over clients and orders.
type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	RecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
}
