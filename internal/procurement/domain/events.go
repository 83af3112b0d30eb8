package domain

import "context"

// Event types emitted after a successful commit
const (
	EventSupplierCreated      = "supplier.created"
	EventSupplierUpdated      = "supplier.updated"
	EventSupplierDeleted      = "supplier.deleted"
	EventPurchaseOrderCreated = "purchase_order.created"
	EventPurchaseOrderUpdated = "purchase_order.updated"
	EventPurchaseOrderDeleted = "purchase_order.deleted"
)

// Event is a change notification for a single entity
type Event struct {
	Type     string
	EntityID uint
	Payload  any
}

// EventPublisher delivers events to interested parties.
// Publishing happens after commit, so a failure never undoes a write.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards every event
type NoopPublisher struct{}

// Publish implements EventPublisher
func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}
