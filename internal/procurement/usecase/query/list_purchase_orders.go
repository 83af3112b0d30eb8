package query

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// ListPurchaseOrdersQuery represents the query to list every purchase order
type ListPurchaseOrdersQuery struct{}

// ListPurchaseOrdersHandler handles list purchase orders query
type ListPurchaseOrdersHandler struct {
	store domain.Store
}

// NewListPurchaseOrdersHandler creates a new list purchase orders handler
func NewListPurchaseOrdersHandler(store domain.Store) *ListPurchaseOrdersHandler {
	return &ListPurchaseOrdersHandler{store: store}
}

// Handle executes the list purchase orders query
func (h *ListPurchaseOrdersHandler) Handle(ctx context.Context, _ ListPurchaseOrdersQuery) ([]domain.PurchaseOrder, error) {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	orders, err := uow.PurchaseOrders().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}
