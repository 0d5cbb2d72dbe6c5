package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/core/ports"
	"github.com/savdo-crm/crm-api/pkg/format"
)

// DashboardHandler handles HTTP requests for the dashboard aggregates.
type DashboardHandler struct {
	service ports.AnalyticsService
}

func NewDashboardHandler(service ports.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the headline dashboard numbers.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardStatsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.DashboardQueryDuration)
	stats, err := h.service.DashboardStats(c.Request().Context())
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardStatsResponse{
		TotalClients:   stats.TotalClients,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		RevenueDisplay: format.Currency(stats.TotalRevenue),
		TotalStores:    stats.TotalStores,
	})
}

// RecentOrders returns the latest orders for the dashboard feed.
//
// @Summary      Recent orders for the dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Maximum number of orders"
// @Success      200  {object}  listOrdersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/recent-orders [get]
func (h *DashboardHandler) RecentOrders(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	orders, err := h.service.RecentOrders(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}
