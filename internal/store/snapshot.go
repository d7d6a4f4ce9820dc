package store

import (
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/grocerstore/internal/domain"
)

// OrderRecord is the persisted form of a pending order. Orders reference
// live catalog products in memory, so only the product id is stored and the
// reference is re-established against the catalog on restore.
type OrderRecord struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the complete persistable state of a store: all three
// collections plus both id sequences.
type Snapshot struct {
	Products  []domain.Product `json:"products"`
	Members   []domain.Member  `json:"members"`
	Orders    []OrderRecord    `json:"orders"`
	MemberSeq int64            `json:"member_seq"`
	OrderSeq  int64            `json:"order_seq"`
}

// Snapshot captures the store's current state as detached values.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Products:  s.ListProducts(),
		Members:   s.ListMembers(),
		Orders:    make([]OrderRecord, 0, s.pending.Len()),
		MemberSeq: s.memberSeq.Current(),
		OrderSeq:  s.orderSeq.Current(),
	}
	for _, o := range s.pending.orders {
		snap.Orders = append(snap.Orders, OrderRecord{
			ID:        o.ID,
			ProductID: o.Item.ID,
			Quantity:  o.Quantity,
			CreatedAt: o.CreatedAt,
		})
	}
	return snap
}

// Restore replaces the store's state with the snapshot, re-linking each
// pending order to its live catalog product. An order whose product id no
// longer resolves fails the restore and leaves the store unchanged.
func (s *Store) Restore(snap Snapshot) error {
	var catalog Catalog
	var members MemberList
	var pending PendingOrders

	for i := range snap.Products {
		p := snap.Products[i].Clone()
		catalog.Add(&p)
	}
	for i := range snap.Members {
		m := snap.Members[i].Clone()
		members.Add(&m)
	}
	for _, rec := range snap.Orders {
		product := catalog.FindByID(rec.ProductID)
		if product == nil {
			return errors.Errorf("order %d references unknown product %q", rec.ID, rec.ProductID)
		}
		pending.Add(&domain.Order{
			ID:        rec.ID,
			Item:      product,
			Quantity:  rec.Quantity,
			CreatedAt: rec.CreatedAt,
		})
	}

	s.catalog = catalog
	s.members = members
	s.pending = pending
	s.memberSeq.Restore(snap.MemberSeq)
	s.orderSeq.Restore(snap.OrderSeq)
	return nil
}
