package schema

import (
	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// PurchaseOrderInput is the client-supplied purchase order shape.
// Pointers distinguish a missing field from a zero value.
type PurchaseOrderInput struct {
	SupplierID *uint   `json:"supplier_id" validate:"required" example:"1"`
	Item       *string `json:"item" validate:"required" example:"Widget"`
	Quantity   *int    `json:"quantity" validate:"required" example:"10"`
}

// Validate checks that every field is present
func (in *PurchaseOrderInput) Validate() error {
	return validateStruct(in)
}

// Apply replaces all mutable order fields; call only after Validate succeeded
func (in PurchaseOrderInput) Apply(o *domain.PurchaseOrder) {
	o.SupplierID = *in.SupplierID
	o.Item = *in.Item
	o.Quantity = *in.Quantity
}

// PurchaseOrderOutput is the client-facing purchase order shape
type PurchaseOrderOutput struct {
	ID         uint   `json:"id" example:"1"`
	SupplierID uint   `json:"supplier_id" example:"1"`
	Item       string `json:"item" example:"Widget"`
	Quantity   int    `json:"quantity" example:"10"`
}

// NewPurchaseOrderOutput projects a persisted purchase order
func NewPurchaseOrderOutput(o *domain.PurchaseOrder) PurchaseOrderOutput {
	return PurchaseOrderOutput{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		Item:       o.Item,
		Quantity:   o.Quantity,
	}
}

// NewPurchaseOrderOutputs projects a list of purchase orders; the result is never nil
func NewPurchaseOrderOutputs(orders []domain.PurchaseOrder) []PurchaseOrderOutput {
	out := make([]PurchaseOrderOutput, 0, len(orders))
	for i := range orders {
		out = append(out, NewPurchaseOrderOutput(&orders[i]))
	}
	return out
}
