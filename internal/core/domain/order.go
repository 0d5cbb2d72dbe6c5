package domain

import "time"

// OrderItem is a single line on an order.
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Order references its client by a denormalized name copy, not a live
// foreign key, so order rows render without a second lookup.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	ClientName  string      `json:"client_name" bson:"client_name"`
	Date        time.Time   `json:"date" bson:"date"`
	Items       []OrderItem `json:"items" bson:"items"`
	TotalAmount float64     `json:"total_amount" bson:"total_amount"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
