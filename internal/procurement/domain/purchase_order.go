package domain

import "context"

// PurchaseOrder records goods ordered from a single supplier.
// Supplier exists only to declare the foreign key; it is never loaded or serialized.
type PurchaseOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SupplierID uint      `json:"supplier_id" gorm:"index;not null"`
	Item       string    `json:"item"`
	Quantity   int       `json:"quantity"`
	Supplier   *Supplier `json:"-" gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderRepository defines the contract for purchase order data access
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *PurchaseOrder) error
	FindByID(ctx context.Context, id uint) (*PurchaseOrder, error)
	FindAll(ctx context.Context) ([]PurchaseOrder, error)
	FindBySupplierID(ctx context.Context, supplierID uint) ([]PurchaseOrder, error)
	Update(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, order *PurchaseOrder) error
}
