package storage

import "property-search/models"

// Keys under which selection state is persisted. The id sets are JSON
// arrays; the view type is a bare string.
const (
	KeyFavorites  = "propertyFavorites"
	KeyComparison = "propertyComparison"
	KeyViewType   = "propertyViewType"
)

// KeySavedProperties holds the older "saved" list, read once and merged into
// favorites.
const KeySavedProperties = "savedProperties"

// KeyValueStore is the durable storage any selection backend must satisfy.
// Get reports ok=false for an absent key; an error means the backend itself
// could not be reached.
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// PropertyWriter is the interface for exporting a search result.
type PropertyWriter interface {
	Write(properties []models.Property) error
	Close() error
}

var (
	_ KeyValueStore  = (*MemoryStore)(nil)
	_ KeyValueStore  = (*PrefixStore)(nil)
	_ KeyValueStore  = (*PostgresStore)(nil)
	_ KeyValueStore  = (*BrowserStore)(nil)
	_ PropertyWriter = (*CSVWriter)(nil)
)
