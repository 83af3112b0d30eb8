package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// DeleteSupplierCommand represents the command to delete a supplier
type DeleteSupplierCommand struct {
	ID uint
}

// DeleteSupplierHandler handles supplier deletion command
type DeleteSupplierHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewDeleteSupplierHandler creates a new delete supplier handler
func NewDeleteSupplierHandler(store domain.Store, publisher domain.EventPublisher) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{store: store, publisher: publisher}
}

// Handle executes the delete supplier command.
// Suppliers that still have purchase orders are kept and a ConflictError is returned.
func (h *DeleteSupplierHandler) Handle(ctx context.Context, cmd DeleteSupplierCommand) error {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	supplier, err := uow.Suppliers().FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	err = uow.Suppliers().Delete(ctx, supplier)
	if err == nil {
		err = uow.Commit()
	}
	if err != nil {
		if errors.Is(err, domain.ErrReferenceViolation) {
			return &domain.ConflictError{
				Entity: "supplier",
				ID:     cmd.ID,
				Reason: "purchase orders still reference it",
			}
		}
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{Type: domain.EventSupplierDeleted, EntityID: cmd.ID})
	return nil
}
