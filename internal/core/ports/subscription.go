package ports

import "context"

// SnapshotFunc receives the full ordered snapshot of a collection each time
// the collection changes. Records are raw documents, id included.
type SnapshotFunc func(records []map[string]any)

// Subscription is a live feed handle. The scope that obtains one must call
// Unsubscribe when it ends; the feed keeps delivering until then.
type Subscription interface {
	Unsubscribe()
}

// CollectionWatcher establishes live push subscriptions on named
// collections. The callback fires once with the current snapshot on
// subscribe, then again on every subsequent change.
type CollectionWatcher interface {
	Watch(ctx context.Context, collection string, fn SnapshotFunc) (Subscription, error)
}
