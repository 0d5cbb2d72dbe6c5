package handler

import (
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
	"github.com/savdo-crm/crm-api/pkg/format"
)

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		PhoneDisplay: format.Phone(c.Phone),
		Address:      c.Address,
		Notes:        c.Notes,
		Stores:       c.Stores,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toClientListResponse(clients []*domain.Client) listClientsResponse {
	data := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		data = append(data, toClientResponse(c))
	}
	return listClientsResponse{Data: data, Total: len(data)}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return orderResponse{
		ID:           o.ID,
		ClientName:   o.ClientName,
		Date:         o.Date,
		DateDisplay:  format.Date(o.Date),
		Items:        items,
		TotalAmount:  o.TotalAmount,
		TotalDisplay: format.Currency(o.TotalAmount),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOrderListResponse(orders []*domain.Order) listOrdersResponse {
	data := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderResponse(o))
	}
	return listOrdersResponse{Data: data, Total: len(data)}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		RoleDisplay: format.RoleName(string(u.Role)),
		Initials:    format.UserInitials(u.Name),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserListResponse(users []*domain.User) listUsersResponse {
	data := make([]userResponse, 0, len(users))
	for _, u := range users {
		data = append(data, toUserResponse(u))
	}
	return listUsersResponse{Data: data, Total: len(data)}
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		UserID:      s.UserID,
		Name:        s.Name,
		Email:       s.Email,
		Role:        string(s.Role),
		RoleDisplay: format.RoleName(string(s.Role)),
		Initials:    format.UserInitials(s.Name),
	}
}

func toOrderItems(items []orderItemRequest) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return out
}

func toOrderUpdate(req updateOrderRequest) ports.OrderUpdate {
	upd := ports.OrderUpdate{
		ClientName:  req.ClientName,
		Date:        req.Date,
		TotalAmount: req.TotalAmount,
	}
	if req.Items != nil {
		items := toOrderItems(*req.Items)
		upd.Items = &items
	}
	return upd
}
