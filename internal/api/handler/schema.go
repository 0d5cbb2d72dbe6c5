package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Client request / response types ---

type createClientRequest struct {
	Name    string   `json:"name"    validate:"required"`
	Phone   string   `json:"phone"   validate:"required"`
	Address string   `json:"address"`
	Notes   string   `json:"notes"`
	Stores  []string `json:"stores"`
}

type updateClientRequest struct {
	Name    *string   `json:"name"`
	Phone   *string   `json:"phone"`
	Address *string   `json:"address"`
	Notes   *string   `json:"notes"`
	Stores  *[]string `json:"stores"`
}

type clientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phone_display"`
	Address      string    `json:"address"`
	Notes        string    `json:"notes,omitempty"`
	Stores       []string  `json:"stores"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type listClientsResponse struct {
	Data  []clientResponse `json:"data"`
	Total int              `json:"total"`
}

// --- Order request / response types ---

type orderItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

type createOrderRequest struct {
	ClientName  string             `json:"client_name"  validate:"required"`
	Date        time.Time          `json:"date"`
	Items       []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
	TotalAmount float64            `json:"total_amount" validate:"gte=0"`
}

type updateOrderRequest struct {
	ClientName  *string             `json:"client_name"`
	Date        *time.Time          `json:"date"`
	Items       *[]orderItemRequest `json:"items"`
	TotalAmount *float64            `json:"total_amount"`
}

type orderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	ClientName   string              `json:"client_name"`
	Date         time.Time           `json:"date"`
	DateDisplay  string              `json:"date_display"`
	Items        []orderItemResponse `json:"items"`
	TotalAmount  float64             `json:"total_amount"`
	TotalDisplay string              `json:"total_display"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type listOrdersResponse struct {
	Data  []orderResponse `json:"data"`
	Total int             `json:"total"`
}

// --- User request / response types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=owner admin manager operator viewer"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display"`
	Initials    string    `json:"initials"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type listUsersResponse struct {
	Data  []userResponse `json:"data"`
	Total int            `json:"total"`
}

// --- Auth request / response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
	Initials    string `json:"initials"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmResetRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// --- Dashboard response types ---

type dashboardStatsResponse struct {
	TotalClients   int     `json:"total_clients"`
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	RevenueDisplay string  `json:"revenue_display"`
	TotalStores    int     `json:"total_stores"`
}
