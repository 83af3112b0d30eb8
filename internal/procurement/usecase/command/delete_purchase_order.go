package command

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// DeletePurchaseOrderCommand represents the command to delete a purchase order
type DeletePurchaseOrderCommand struct {
	ID uint
}

// DeletePurchaseOrderHandler handles purchase order deletion command
type DeletePurchaseOrderHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewDeletePurchaseOrderHandler creates a new delete purchase order handler
func NewDeletePurchaseOrderHandler(store domain.Store, publisher domain.EventPublisher) *DeletePurchaseOrderHandler {
	return &DeletePurchaseOrderHandler{store: store, publisher: publisher}
}

// Handle executes the delete purchase order command
func (h *DeletePurchaseOrderHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	order, err := uow.PurchaseOrders().FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if err := uow.PurchaseOrders().Delete(ctx, order); err != nil {
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase order deletion: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{Type: domain.EventPurchaseOrderDeleted, EntityID: cmd.ID})
	return nil
}
