package query

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// ListSuppliersQuery represents the query to list every supplier
type ListSuppliersQuery struct{}

// ListSuppliersHandler handles list suppliers query
type ListSuppliersHandler struct {
	store domain.Store
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(store domain.Store) *ListSuppliersHandler {
	return &ListSuppliersHandler{store: store}
}

// Handle executes the list suppliers query
func (h *ListSuppliersHandler) Handle(ctx context.Context, _ ListSuppliersQuery) ([]domain.Supplier, error) {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	suppliers, err := uow.Suppliers().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}
