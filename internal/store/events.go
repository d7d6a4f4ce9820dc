package store

// Event topics published on the store's bus. Every mutating operation emits
// exactly one topic; publication is synchronous, subscribers run inline
// before the operation returns.
const (
	TopicMemberEnrolled    = "store.member.enrolled"
	TopicMemberRemoved     = "store.member.removed"
	TopicProductAdded      = "store.product.added"
	TopicCheckoutCompleted = "store.checkout.completed"
	TopicOrderCreated      = "store.order.created"
	TopicOrderFulfilled    = "store.order.fulfilled"
	TopicPriceChanged      = "store.price.changed"
)
