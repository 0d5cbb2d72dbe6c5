package mongo

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

// watchable lists the collections a live subscription may target. The
// stores collection is deliberately absent.
var watchable = map[string]struct{}{
	CollectionClients: {},
	CollectionOrders:  {},
	CollectionUsers:   {},
}

// Watcher establishes live push subscriptions backed by MongoDB change
// streams. Every change re-delivers the full snapshot, newest first, which
// matches how the dashboard consumes collections.
type Watcher struct {
	db  *mongo.Database
	log zerolog.Logger
}

func NewWatcher(db *mongo.Database, log zerolog.Logger) *Watcher {
	return &Watcher{db: db, log: log}
}

// Watch opens a change stream on collection and starts delivering
// snapshots to fn: once immediately, then on every change. The returned
// subscription must be released by the owning scope or the stream and its
// goroutine stay alive indefinitely.
func (w *Watcher) Watch(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error) {
	if _, ok := watchable[collection]; !ok {
		return nil, domain.ErrUnknownCollection
	}

	col := w.db.Collection(collection)

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := col.Watch(streamCtx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, err
	}

	snapshot, err := w.snapshot(streamCtx, col)
	if err != nil {
		_ = stream.Close(streamCtx)
		cancel()
		return nil, err
	}
	fn(snapshot)

	go w.run(streamCtx, stream, col, collection, fn)

	return &subscription{cancel: cancel}, nil
}

func (w *Watcher) run(ctx context.Context, stream *mongo.ChangeStream, col *mongo.Collection, name string, fn ports.SnapshotFunc) {
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer closeCancel()
		_ = stream.Close(closeCtx)
	}()

	for stream.Next(ctx) {
		snapshot, err := w.snapshot(ctx, col)
		if err != nil {
			w.log.Error().Err(err).Str("collection", name).Msg("snapshot refresh failed")
			continue
		}
		fn(snapshot)
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		w.log.Error().Err(err).Str("collection", name).Msg("change stream terminated")
	}
}

// snapshot fetches the full collection ordered by creation time descending.
func (w *Watcher) snapshot(ctx context.Context, col *mongo.Collection) ([]map[string]any, error) {
	findCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(findCtx, bson.M{}, findSortedBy("created_at"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(findCtx)

	docs := []map[string]any{}
	if err := cur.All(findCtx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

type subscription struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
