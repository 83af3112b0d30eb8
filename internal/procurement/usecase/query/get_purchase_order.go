package query

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// GetPurchaseOrderQuery represents the query to get a purchase order by ID
type GetPurchaseOrderQuery struct {
	ID uint
}

// GetPurchaseOrderHandler handles get purchase order query
type GetPurchaseOrderHandler struct {
	store domain.Store
}

// NewGetPurchaseOrderHandler creates a new get purchase order handler
func NewGetPurchaseOrderHandler(store domain.Store) *GetPurchaseOrderHandler {
	return &GetPurchaseOrderHandler{store: store}
}

// Handle executes the get purchase order query
func (h *GetPurchaseOrderHandler) Handle(ctx context.Context, q GetPurchaseOrderQuery) (*domain.PurchaseOrder, error) {
	uow, err := h.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Close()

	return uow.PurchaseOrders().FindByID(ctx, q.ID)
}
