package domain

import "strings"

// Product represents a single catalog item. The name is the business key and
// is unique within the catalog (case-insensitive); the id is a separate string
// key used by checkout and ordering. Stock and price are mutated in place by
// store operations, so a Product held by a pending order observes live stock.
type Product struct {
	Name         string  `json:"name"`
	ID           string  `json:"id"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	ReorderLevel int     `json:"reorder_level"`
}

// MatchesName reports whether name equals the product name, ignoring case.
func (p *Product) MatchesName(name string) bool {
	return strings.EqualFold(p.Name, name)
}

// MatchesID reports whether id equals the product id, ignoring case.
func (p *Product) MatchesID(id string) bool {
	return strings.EqualFold(p.ID, id)
}

// Clone returns a detached copy sharing no state with the live entity.
func (p *Product) Clone() Product {
	return *p
}
