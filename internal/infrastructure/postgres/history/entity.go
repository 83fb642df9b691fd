package history

import (
	"time"
)

// Order is the traversal direction of a history query.
type Order string

const (
	// OrderAsc traverses from oldest to newest.
	OrderAsc Order = "ASC"
	// OrderDesc traverses from newest to oldest.
	OrderDesc Order = "DESC"
)

// Valid reports whether the order is one of the supported directions.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// History represents one persisted price snapshot for a SKU.
// (sku, created_at) is the primary key; records are never updated or deleted.
type History struct {
	SKU           string    `json:"sku"`
	BuyHalfScrap  int       `json:"buyHalfScrap"`
	BuyKeys       int       `json:"buyKeys"`
	SellHalfScrap int       `json:"sellHalfScrap"`
	SellKeys      int       `json:"sellKeys"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SamePrice reports whether both records carry identical price components.
func (h *History) SamePrice(other *History) bool {
	return h.BuyHalfScrap == other.BuyHalfScrap &&
		h.BuyKeys == other.BuyKeys &&
		h.SellHalfScrap == other.SellHalfScrap &&
		h.SellKeys == other.SellKeys
}

// IntervalEntry is a history record normalized to the start of its interval
// bucket. Populated is true when the entry was synthesized from a neighbor
// rather than selected from a real record.
type IntervalEntry struct {
	History
	Populated bool `json:"populated"`
}

// Filter represents the filter criteria for history records.
type Filter struct {
	SKU    string
	From   *time.Time
	To     *time.Time
	Order  Order
	Limit  int
	Offset int
}

// IntervalFilter represents the filter criteria for bucket-deduplicated
// history records.
type IntervalFilter struct {
	Filter
	IntervalMs int64
}
