package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type OrderRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		col: db.Collection(CollectionOrders),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all orders ordered by order date descending.
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, findSortedBy("date"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []*domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListRecent returns the newest limit orders by order date.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := findSortedBy("date").SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []*domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Create inserts a new order with a generated id and server-stamped timestamps.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := r.now()
	o.ID = primitive.NewObjectID().Hex()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Items == nil {
		o.Items = []domain.OrderItem{}
	}

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update applies the non-nil fields of upd and bumps updated_at.
func (r *OrderRepository) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": r.now()}
	if upd.ClientName != nil {
		set["client_name"] = *upd.ClientName
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Items != nil {
		set["items"] = *upd.Items
	}
	if upd.TotalAmount != nil {
		set["total_amount"] = *upd.TotalAmount
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an order; a miss reports ErrOrderNotFound.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the date ordering.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
