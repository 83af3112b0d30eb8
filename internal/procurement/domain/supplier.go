package domain

import "context"

// Supplier represents a vendor the organisation buys from
type Supplier struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"index;not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	Phone string `json:"phone" gorm:"not null"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierRepository defines the contract for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	FindByEmail(ctx context.Context, email string) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, supplier *Supplier) error
}
