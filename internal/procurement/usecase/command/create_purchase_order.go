package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
)

// CreatePurchaseOrderCommand represents the command to create a purchase order
type CreatePurchaseOrderCommand struct {
	Input schema.PurchaseOrderInput
}

// CreatePurchaseOrderHandler handles purchase order creation command
type CreatePurchaseOrderHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewCreatePurchaseOrderHandler creates a new create purchase order handler
func NewCreatePurchaseOrderHandler(store domain.Store, publisher domain.EventPublisher) *CreatePurchaseOrderHandler {
	return &CreatePurchaseOrderHandler{store: store, publisher: publisher}
}

// Handle executes the create purchase order command
func (h *CreatePurchaseOrderHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) (*domain.PurchaseOrder, error) {
	if err := cmd.Input.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	order := &domain.PurchaseOrder{}
	cmd.Input.Apply(order)

	err = uow.PurchaseOrders().Create(ctx, order)
	if err == nil {
		err = uow.Commit()
	}
	if err != nil {
		if errors.Is(err, domain.ErrReferenceViolation) {
			return nil, unknownSupplier(order.SupplierID)
		}
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{
		Type:     domain.EventPurchaseOrderCreated,
		EntityID: order.ID,
		Payload:  schema.NewPurchaseOrderOutput(order),
	})
	return order, nil
}

func unknownSupplier(id uint) error {
	return &domain.ReferenceError{Field: "supplier_id", ID: id}
}
