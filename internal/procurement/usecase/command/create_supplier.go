package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
)

// CreateSupplierCommand represents the command to create a new supplier
type CreateSupplierCommand struct {
	Input schema.SupplierInput
}

// CreateSupplierHandler handles supplier creation command
type CreateSupplierHandler struct {
	store     domain.Store
	publisher domain.EventPublisher
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(store domain.Store, publisher domain.EventPublisher) *CreateSupplierHandler {
	return &CreateSupplierHandler{store: store, publisher: publisher}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) (*domain.Supplier, error) {
	input := cmd.Input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	existing, err := uow.Suppliers().FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check supplier email: %w", err)
	}
	if existing != nil {
		return nil, duplicateEmail(input.Email)
	}

	supplier := &domain.Supplier{}
	input.Apply(supplier)

	// The unique index still guards against a concurrent insert slipping past the check.
	if err := uow.Suppliers().Create(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			return nil, duplicateEmail(input.Email)
		}
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	if err := uow.Commit(); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			return nil, duplicateEmail(input.Email)
		}
		return nil, fmt.Errorf("failed to commit supplier: %w", err)
	}

	publish(ctx, h.publisher, domain.Event{
		Type:     domain.EventSupplierCreated,
		EntityID: supplier.ID,
		Payload:  schema.NewSupplierOutput(supplier),
	})
	return supplier, nil
}

func duplicateEmail(email string) error {
	return &domain.DuplicateError{Entity: "supplier", Field: "email", Value: email}
}
