package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
)

// UpdateSupplierCommand replaces every mutable field of a supplier
type UpdateSupplierCommand struct {
	ID    uint
	Input schema.SupplierInput
}

// UpdateSupplierHandler handles supplier update command
type UpdateSupplierHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(store domain.Store, publisher domain.EventPublisher) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{store: store, publisher: publisher}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	input := cmd.Input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	supplier, err := uow.Suppliers().FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	input.Apply(supplier)

	err = uow.Suppliers().Update(ctx, supplier)
	if err == nil {
		err = uow.Commit()
	}
	if err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			_ = uow.Rollback()
			return nil, duplicateEmail(input.Email)
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{
		Type:     domain.EventSupplierUpdated,
		EntityID: supplier.ID,
		Payload:  schema.NewSupplierOutput(supplier),
	})
	return supplier, nil
}
