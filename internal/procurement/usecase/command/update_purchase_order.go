package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
)

// UpdatePurchaseOrderCommand replaces every mutable field of a purchase order
type UpdatePurchaseOrderCommand struct {
	ID    uint
	Input schema.PurchaseOrderInput
}

// UpdatePurchaseOrderHandler handles purchase order update command
type UpdatePurchaseOrderHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewUpdatePurchaseOrderHandler creates a new update purchase order handler
func NewUpdatePurchaseOrderHandler(store domain.Store, publisher domain.EventPublisher) *UpdatePurchaseOrderHandler {
	return &UpdatePurchaseOrderHandler{store: store, publisher: publisher}
}

// Handle executes the update purchase order command
func (h *UpdatePurchaseOrderHandler) Handle(ctx context.Context, cmd UpdatePurchaseOrderCommand) (*domain.PurchaseOrder, error) {
	if err := cmd.Input.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	order, err := uow.PurchaseOrders().FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	cmd.Input.Apply(order)

	err = uow.PurchaseOrders().Update(ctx, order)
	if err == nil {
		err = uow.Commit()
	}
	if err != nil {
		if errors.Is(err, domain.ErrReferenceViolation) {
			return nil, unknownSupplier(order.SupplierID)
		}
		return nil, fmt.Errorf("failed to update purchase order: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{
		Type:     domain.EventPurchaseOrderUpdated,
		EntityID: order.ID,
		Payload:  schema.NewPurchaseOrderOutput(order),
	})
	return order, nil
}
