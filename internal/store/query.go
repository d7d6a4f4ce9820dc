package store

import (
	"time"

	"github.com/talkincode/grocerstore/internal/domain"
)

// OrderView is the detached representation of a pending order handed to
// callers. The referenced product is copied, so mutating the view does not
// reach the live catalog entry.
type OrderView struct {
	ID        int64          `json:"id"`
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
}

func newOrderView(o *domain.Order) OrderView {
	return OrderView{
		ID:        o.ID,
		Product:   o.Item.Clone(),
		Quantity:  o.Quantity,
		CreatedAt: o.CreatedAt,
	}
}

// GetProduct returns a detached copy of the product with the given id.
func (s *Store) GetProduct(id string) (domain.Product, error) {
	product := s.catalog.FindByID(id)
	if product == nil {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product.Clone(), nil
}

// GetProductByName returns a detached copy of the product with the given
// name (case-insensitive).
func (s *Store) GetProductByName(name string) (domain.Product, error) {
	product := s.catalog.FindByName(name)
	if product == nil {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product.Clone(), nil
}

// GetMember returns a detached copy of the member with the given id,
// including a copy of the transaction log.
func (s *Store) GetMember(id int64) (domain.Member, error) {
	member := s.members.FindByID(id)
	if member == nil {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	return member.Clone(), nil
}

// GetOrder returns a detached view of the pending order with the given id.
func (s *Store) GetOrder(id int64) (OrderView, error) {
	order := s.pending.FindByOrderID(id)
	if order == nil {
		return OrderView{}, domain.ErrOrderNotFound
	}
	return newOrderView(order), nil
}

// ListProducts returns detached copies of every catalog entry in insertion
// order. The slice is a snapshot taken at call time.
func (s *Store) ListProducts() []domain.Product {
	out := make([]domain.Product, 0, s.catalog.Len())
	for _, p := range s.catalog.products {
		out = append(out, p.Clone())
	}
	return out
}

// ListMembers returns detached copies of every member in enrollment order.
func (s *Store) ListMembers() []domain.Member {
	out := make([]domain.Member, 0, s.members.Len())
	for _, m := range s.members.members {
		out = append(out, m.Clone())
	}
	return out
}

// ListOrders returns detached views of every pending order in creation
// order.
func (s *Store) ListOrders() []OrderView {
	out := make([]OrderView, 0, s.pending.Len())
	for _, o := range s.pending.orders {
		out = append(out, newOrderView(o))
	}
	return out
}

// TransactionsForMember returns the member's transactions whose purchase
// date falls within [start, end], inclusive at both bounds at calendar-day
// granularity, in chronological order.
func (s *Store) TransactionsForMember(memberID int64, start, end time.Time) ([]domain.Transaction, error) {
	member := s.members.FindByID(memberID)
	if member == nil {
		return nil, domain.ErrMemberNotFound
	}
	return member.TransactionsBetween(start, end), nil
}
