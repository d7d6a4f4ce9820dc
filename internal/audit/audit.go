// Package audit writes one structured log line per store mutation by
// subscribing to the store's event bus. Handlers run synchronously inside
// the publishing operation.
package audit

import (
	"github.com/asaskevich/EventBus"
	"github.com/talkincode/grocerstore/internal/domain"
	"github.com/talkincode/grocerstore/internal/store"
	"go.uber.org/zap"
)

// Recorder holds the subscribed logger.
type Recorder struct {
	log *zap.SugaredLogger
}

// Attach subscribes a recorder to every store topic on bus.
func Attach(bus EventBus.Bus) (*Recorder, error) {
	r := &Recorder{log: zap.S().Named("audit")}

	subs := map[string]interface{}{
		store.TopicMemberEnrolled: func(m domain.Member) {
			r.log.Infow("member enrolled", "id", m.ID, "name", m.Name)
		},
		store.TopicMemberRemoved: func(m domain.Member) {
			r.log.Infow("member removed", "id", m.ID, "name", m.Name)
		},
		store.TopicProductAdded: func(p domain.Product) {
			r.log.Infow("product added", "id", p.ID, "name", p.Name,
				"stock", p.Stock, "price", p.Price, "reorder_level", p.ReorderLevel)
		},
		store.TopicCheckoutCompleted: func(memberID int64, t domain.Transaction) {
			r.log.Infow("checkout completed", "member", memberID,
				"product", t.Item.ID, "qty", t.Quantity, "total", t.Total())
		},
		store.TopicOrderCreated: func(o store.OrderView) {
			r.log.Infow("restock order placed", "order", o.ID,
				"product", o.Product.ID, "qty", o.Quantity)
		},
		store.TopicOrderFulfilled: func(o store.OrderView) {
			r.log.Infow("shipment processed", "order", o.ID,
				"product", o.Product.ID, "qty", o.Quantity)
		},
		store.TopicPriceChanged: func(p domain.Product) {
			r.log.Infow("price changed", "product", p.ID, "price", p.Price)
		},
	}
	for topic, handler := range subs {
		if err := bus.Subscribe(topic, handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}
