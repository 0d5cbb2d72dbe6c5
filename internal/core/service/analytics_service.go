package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type AnalyticsService struct {
	clients ports.ClientRepository
	orders  ports.OrderRepository
}

func NewAnalyticsService(clients ports.ClientRepository, orders ports.OrderRepository) *AnalyticsService {
	return &AnalyticsService{clients: clients, orders: orders}
}

// DashboardStats fetches clients and orders concurrently and aggregates
// the headline numbers. Orders with no amount count as zero revenue;
// store identifiers are deduplicated across all clients.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		clients []*domain.Client
		orders  []*domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var revenue float64
	for _, o := range orders {
		revenue += o.TotalAmount
	}

	stores := make(map[string]struct{})
	for _, c := range clients {
		for _, id := range c.Stores {
			stores[id] = struct{}{}
		}
	}

	return &domain.DashboardStats{
		TotalClients: len(clients),
		TotalOrders:  len(orders),
		TotalRevenue: revenue,
		TotalStores:  len(stores),
	}, nil
}

// RecentOrders returns the newest limit orders for the dashboard feed.
func (s *AnalyticsService) RecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.orders.ListRecent(ctx, limit)
}
