package store

import "github.com/talkincode/grocerstore/internal/domain"

// Catalog holds every product the store sells, in insertion order. Lookups
// are linear scans; the collection never removes entries.
type Catalog struct {
	products []*domain.Product
}

// Add appends the product unless another entry already carries the same name
// (case-insensitive). Returns false and leaves the catalog unchanged on a
// duplicate.
func (c *Catalog) Add(product *domain.Product) bool {
	if c.FindByName(product.Name) != nil {
		return false
	}
	c.products = append(c.products, product)
	return true
}

// FindByName returns the first product matching name, ignoring case, or nil.
func (c *Catalog) FindByName(name string) *domain.Product {
	for _, p := range c.products {
		if p.MatchesName(name) {
			return p
		}
	}
	return nil
}

// FindByID returns the first product matching id, ignoring case, or nil.
func (c *Catalog) FindByID(id string) *domain.Product {
	for _, p := range c.products {
		if p.MatchesID(id) {
			return p
		}
	}
	return nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}
