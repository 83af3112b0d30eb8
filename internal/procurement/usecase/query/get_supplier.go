package query

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// GetSupplierQuery represents the query to get a supplier by ID
type GetSupplierQuery struct {
	ID uint
}

// GetSupplierHandler handles get supplier query
type GetSupplierHandler struct {
	store domain.Store
}

// NewGetSupplierHandler creates a new get supplier handler
func NewGetSupplierHandler(store domain.Store) *GetSupplierHandler {
	return &GetSupplierHandler{store: store}
}

// Handle executes the get supplier query
func (h *GetSupplierHandler) Handle(ctx context.Context, q GetSupplierQuery) (*domain.Supplier, error) {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	return uow.Suppliers().FindByID(ctx, q.ID)
}
