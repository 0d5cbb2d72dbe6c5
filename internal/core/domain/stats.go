package domain

// DashboardStats aggregates the headline numbers shown on the dashboard.
// TotalStores counts distinct store identifiers across all clients.
type DashboardStats struct {
	TotalClients int     `json:"total_clients"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalStores  int     `json:"total_stores"`
}
