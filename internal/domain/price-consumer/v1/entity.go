package v1

import (
	"time"
)

// PriceUpdateEvent is a price update received from the external feed.
// UpdatedAt is the authoritative effective time of the price; CreatedAt may
// accompany the event but is not used for storage.
type PriceUpdateEvent struct {
	SKU           string    `json:"sku"`
	BuyHalfScrap  int       `json:"buyHalfScrap"`
	BuyKeys       int       `json:"buyKeys"`
	SellHalfScrap int       `json:"sellHalfScrap"`
	SellKeys      int       `json:"sellKeys"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
