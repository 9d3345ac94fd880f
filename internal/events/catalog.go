package events

import "time"

// Event type names for catalog lifecycle events.
const (
	TypeCatalogRefreshed  = "catalog.refreshed"
	TypeCollectionAdded   = "catalog.collection_added"
	TypeCollectionChanged = "catalog.collection_changed"
)

// CatalogRefreshed is emitted after a full catalog rebuild has been
// published, whether triggered by the timer, the watcher or by hand.
type CatalogRefreshed struct {
	BaseEvent
	Collections int           `json:"collections"`
	Items       int           `json:"items"`
	Elapsed     time.Duration `json:"elapsed"`
}

// NewCatalogRefreshed builds the event for a completed rebuild.
func NewCatalogRefreshed(collections, items int, elapsed time.Duration) CatalogRefreshed {
	return CatalogRefreshed{
		BaseEvent:   NewBaseEvent(TypeCatalogRefreshed, "catalog", ""),
		Collections: collections,
		Items:       items,
		Elapsed:     elapsed,
	}
}

// CollectionAdded is emitted when a collection is registered.
type CollectionAdded struct {
	BaseEvent
	Name      string `json:"name"`
	Kind      string `json:"kind"` // "movies" or "shows"
	Directory string `json:"directory"`
}

// NewCollectionAdded builds the event for a newly registered collection.
func NewCollectionAdded(id, name, kind, directory string) CollectionAdded {
	return CollectionAdded{
		BaseEvent: NewBaseEvent(TypeCollectionAdded, "collection", id),
		Name:      name,
		Kind:      kind,
		Directory: directory,
	}
}

// CollectionChanged is emitted by the filesystem watcher when files
// under a collection root change, before the rescan it triggers.
type CollectionChanged struct {
	BaseEvent
	Path string `json:"path"`
}

// NewCollectionChanged builds the event for a watched directory change.
func NewCollectionChanged(id, path string) CollectionChanged {
	return CollectionChanged{
		BaseEvent: NewBaseEvent(TypeCollectionChanged, "collection", id),
		Path:      path,
	}
}
