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

type ClientRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		col: db.Collection(CollectionClients),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all clients ordered by creation time descending.
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, findSortedBy("created_at"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []*domain.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new client. The id and both timestamps are assigned
// here, never taken from the caller, so ordering stays consistent across
// callers with skewed clocks.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := r.now()
	c.ID = primitive.NewObjectID().Hex()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Stores == nil {
		c.Stores = []string{}
	}

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the non-nil fields of upd and bumps updated_at.
func (r *ClientRepository) Update(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": r.now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.Stores != nil {
		set["stores"] = *upd.Stores
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrClientNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a client. Deleting an id that does not exist reports
// ErrClientNotFound rather than succeeding silently.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list ordering.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
