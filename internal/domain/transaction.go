package domain

import "time"

// Transaction is an immutable record of one checkout line. It carries a
// defensive copy of the product taken at purchase time, so later catalog
// changes (price, name) never alter historical records.
type Transaction struct {
	Item      Product   `json:"item"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransaction snapshots the given product and stamps the purchase time.
func NewTransaction(item *Product, quantity int) Transaction {
	return Transaction{
		Item:      item.Clone(),
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}

// Total returns the purchase total at the frozen price.
func (t Transaction) Total() float64 {
	return t.Item.Price * float64(t.Quantity)
}
