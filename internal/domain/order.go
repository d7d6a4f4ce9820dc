package domain

import "time"

// Order is a pending restock request. It references the live catalog product
// rather than a copy, so the order always observes current stock. An order is
// created either when a product is first added (initial stocking) or when a
// reorder check finds stock at or below the reorder level, and it is retired
// only by processing its shipment.
type Order struct {
	ID        int64     `json:"id"`
	Item      *Product  `json:"-"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchesID reports whether id equals the order id.
func (o *Order) MatchesID(id int64) bool {
	return o.ID == id
}
