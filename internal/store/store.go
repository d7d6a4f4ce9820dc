package store

import (
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/grocerstore/internal/domain"
	"go.uber.org/zap"
)

// Store is the single coordination point of the application. It owns the
// catalog, the member list and the pending-order queue, and every mutation of
// those collections goes through one of its operations. Queries hand out
// detached copies only, never live entity references.
type Store struct {
	catalog   Catalog
	members   MemberList
	pending   PendingOrders
	memberSeq *domain.Sequence
	orderSeq  *domain.Sequence
	bus       EventBus.Bus
}

// New creates an empty store with fresh id sequences and no event bus.
func New() *Store {
	return NewWithBus(nil)
}

// NewWithBus creates an empty store publishing domain events on bus. A nil
// bus disables publication.
func NewWithBus(bus EventBus.Bus) *Store {
	return &Store{
		memberSeq: domain.NewSequence(),
		orderSeq:  domain.NewSequence(),
		bus:       bus,
	}
}

// EnrollMember adds a new member and issues the next member id. Enrollment
// always succeeds.
func (s *Store) EnrollMember(name, address, phone string, fee float64, joinDate time.Time) domain.Member {
	member := &domain.Member{
		ID:       s.memberSeq.Next(),
		Name:     name,
		Address:  address,
		Phone:    phone,
		JoinDate: joinDate,
		Fee:      fee,
	}
	s.members.Add(member)
	zap.S().Debugf("enrolled member %d (%s)", member.ID, member.Name)
	s.publish(TopicMemberEnrolled, member.Clone())
	return member.Clone()
}

// RemoveMember deletes the member with the given id and returns a copy of
// the removed record. The member's transaction log is discarded. Ids of
// removed members are never reissued.
func (s *Store) RemoveMember(id int64) (domain.Member, error) {
	member := s.members.FindByID(id)
	if member == nil {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	removed := member.Clone()
	s.members.Remove(id)
	s.publish(TopicMemberRemoved, removed)
	return removed, nil
}

// AddProduct adds a new catalog entry and, as a deliberate side effect,
// immediately places a pending restock order for twice the reorder level
// (the initial stocking rule). Fails when a product with the same name
// already exists, leaving the catalog unchanged.
func (s *Store) AddProduct(name, id string, stock int, price float64, reorderLevel int) (domain.Product, error) {
	product := &domain.Product{
		Name:         name,
		ID:           id,
		Stock:        stock,
		Price:        price,
		ReorderLevel: reorderLevel,
	}
	if !s.catalog.Add(product) {
		return domain.Product{}, domain.ErrProductExists
	}
	s.publish(TopicProductAdded, product.Clone())
	s.placeOrder(product)
	return product.Clone(), nil
}

// CheckoutMember records the purchase of quantity units of a product against
// a member's account: a transaction with a frozen product snapshot is
// appended to the member's log and the live stock is decremented. The caller
// is expected to have verified member and product via the lookup operations;
// unknown ids are reported as not-found rather than faulting. Checkout does
// not trigger reordering, the caller runs CheckForReorder afterwards.
func (s *Store) CheckoutMember(memberID int64, productID string, quantity int) (domain.Transaction, error) {
	member := s.members.FindByID(memberID)
	if member == nil {
		return domain.Transaction{}, domain.ErrMemberNotFound
	}
	product := s.catalog.FindByID(productID)
	if product == nil {
		return domain.Transaction{}, domain.ErrProductNotFound
	}
	trans := domain.NewTransaction(product, quantity)
	member.AddTransaction(trans)
	product.Stock -= quantity
	zap.S().Debugf("checkout member=%d product=%s qty=%d total=%.2f",
		memberID, product.ID, quantity, trans.Total())
	s.publish(TopicCheckoutCompleted, member.ID, trans)
	return trans, nil
}

// CheckForReorder places a restock order for twice the reorder level when
// the product's stock has fallen to or below its reorder level and no
// pending order references the product yet. The second condition makes the
// check idempotent: repeated calls with unchanged stock create exactly one
// order. Returns the created order and true, or a zero view and false when
// no action was taken.
func (s *Store) CheckForReorder(productID string) (OrderView, bool, error) {
	product := s.catalog.FindByID(productID)
	if product == nil {
		return OrderView{}, false, domain.ErrProductNotFound
	}
	if product.Stock > product.ReorderLevel || s.pending.ContainsProductOrder(product) {
		return OrderView{}, false, nil
	}
	order := s.placeOrder(product)
	return newOrderView(order), true, nil
}

// ProcessShipment applies a pending order's quantity back onto the
// referenced product's stock and retires the order. This is the only way a
// pending order is ever retired; a retired order id is reported not-found.
func (s *Store) ProcessShipment(orderID int64) (domain.Product, error) {
	order := s.pending.Remove(orderID)
	if order == nil {
		return domain.Product{}, domain.ErrOrderNotFound
	}
	order.Item.Stock += order.Quantity
	zap.S().Debugf("shipment processed order=%d product=%s stock=%d",
		order.ID, order.Item.ID, order.Item.Stock)
	s.publish(TopicOrderFulfilled, newOrderView(order))
	return order.Item.Clone(), nil
}

// ChangeProductPrice updates the price of the product with the given id.
// Previously recorded transactions keep the price frozen at purchase time.
func (s *Store) ChangeProductPrice(productID string, newPrice float64) (domain.Product, error) {
	product := s.catalog.FindByID(productID)
	if product == nil {
		return domain.Product{}, domain.ErrProductNotFound
	}
	product.Price = newPrice
	s.publish(TopicPriceChanged, product.Clone())
	return product.Clone(), nil
}

// placeOrder creates a pending order for twice the product's reorder level.
func (s *Store) placeOrder(product *domain.Product) *domain.Order {
	order := &domain.Order{
		ID:        s.orderSeq.Next(),
		Item:      product,
		Quantity:  product.ReorderLevel * 2,
		CreatedAt: time.Now(),
	}
	s.pending.Add(order)
	zap.S().Debugf("restock order %d placed: product=%s qty=%d", order.ID, product.ID, order.Quantity)
	s.publish(TopicOrderCreated, newOrderView(order))
	return order
}

func (s *Store) publish(topic string, args ...interface{}) {
	if s.bus != nil {
		s.bus.Publish(topic, args...)
	}
}
