package store

import "github.com/talkincode/grocerstore/internal/domain"

// PendingOrders holds restock orders that have been placed but not yet
// fulfilled, in creation order.
type PendingOrders struct {
	orders []*domain.Order
}

// Add appends the order.
func (p *PendingOrders) Add(order *domain.Order) {
	p.orders = append(p.orders, order)
}

// FindByOrderID returns the pending order with the given id, or nil.
func (p *PendingOrders) FindByOrderID(id int64) *domain.Order {
	for _, o := range p.orders {
		if o.MatchesID(id) {
			return o
		}
	}
	return nil
}

// Remove deletes and returns the pending order with the given id, or nil
// when no order matches.
func (p *PendingOrders) Remove(id int64) *domain.Order {
	for i, o := range p.orders {
		if o.MatchesID(id) {
			p.orders = append(p.orders[:i], p.orders[i+1:]...)
			return o
		}
	}
	return nil
}

// ContainsProductOrder reports whether any pending order references a product
// with the same id. This backs the guarantee that at most one pending order
// exists per product.
func (p *PendingOrders) ContainsProductOrder(product *domain.Product) bool {
	for _, o := range p.orders {
		if o.Item.MatchesID(product.ID) {
			return true
		}
	}
	return false
}

// Len returns the number of pending orders.
func (p *PendingOrders) Len() int {
	return len(p.orders)
}
