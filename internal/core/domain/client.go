package domain

import "time"

// Client is a customer of the sales operation. Stores holds opaque store
// identifiers; the stores collection itself is never joined.
type Client struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Address   string    `json:"address" bson:"address"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Stores    []string  `json:"stores" bson:"stores"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
