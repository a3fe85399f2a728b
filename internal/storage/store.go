package storage

// Collection names. Each collection is persisted independently as a single
// ordered JSON array.
const (
	CollectionOpenOrders   = "open_orders"
	CollectionOrderHistory = "order_history"
	CollectionProducts     = "products"
)

// Store is the persisted-collection resource behind the ledger. Load decodes
// a collection into dest; a missing collection decodes as empty and a corrupt
// one yields an empty dest plus a CorruptStateError. Save atomically replaces
// the collection. SaveAll replaces several collections in one call; the
// ledger is the single writer, so cross-collection consistency is its job.
type Store interface {
	Load(collection string, dest interface{}) error
	Save(collection string, value interface{}) error
	SaveAll(collections map[string]interface{}) error
}
