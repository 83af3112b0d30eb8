package query

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// ListSupplierPurchaseOrdersQuery lists the orders placed with one supplier
type ListSupplierPurchaseOrdersQuery struct {
	SupplierID uint
}

// ListSupplierPurchaseOrdersHandler handles the supplier orders query
type ListSupplierPurchaseOrdersHandler struct {
	store domain.Store
}

// NewListSupplierPurchaseOrdersHandler creates a new supplier orders handler
func NewListSupplierPurchaseOrdersHandler(store domain.Store) *ListSupplierPurchaseOrdersHandler {
	return &ListSupplierPurchaseOrdersHandler{store: store}
}

// Handle executes the query. An unknown supplier yields an empty list, not an error.
func (h *ListSupplierPurchaseOrdersHandler) Handle(ctx context.Context, q ListSupplierPurchaseOrdersQuery) ([]domain.PurchaseOrder, error) {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	orders, err := uow.PurchaseOrders().FindBySupplierID(ctx, q.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders for supplier %d: %w", q.SupplierID, err)
	}
	return orders, nil
}
