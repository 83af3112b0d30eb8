package repository

import (
	"context"
	"fmt"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/pkg/database"
)

// GormSupplierRepository persists suppliers through a database session
type GormSupplierRepository struct {
	session *database.Session
}

// NewGormSupplierRepository creates a supplier repository bound to a session
func NewGormSupplierRepository(session *database.Session) *GormSupplierRepository {
	return &GormSupplierRepository{session: session}
}

func (r *GormSupplierRepository) Create(_ context.Context, supplier *domain.Supplier) error {
	return translate(r.session.Insert(supplier))
}

func (r *GormSupplierRepository) FindByID(_ context.Context, id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := r.session.GetByID(&supplier, id); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.NewNotFound("supplier", id)
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByEmail returns nil without error when no supplier uses the address
func (r *GormSupplierRepository) FindByEmail(_ context.Context, email string) (*domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.session.Filter(&suppliers, "email", email); err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return nil, nil
	}
	return &suppliers[0], nil
}

func (r *GormSupplierRepository) FindAll(_ context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := r.session.ListAll(&suppliers)
	return suppliers, err
}

// Update replaces a stored supplier; a row deleted meanwhile is reported as not found
func (r *GormSupplierRepository) Update(_ context.Context, supplier *domain.Supplier) error {
	if err := r.session.Update(supplier); err != nil {
		if database.IsNotFound(err) {
			return domain.NewNotFound("supplier", supplier.ID)
		}
		return translate(err)
	}
	return nil
}

func (r *GormSupplierRepository) Delete(_ context.Context, supplier *domain.Supplier) error {
	return translate(r.session.Delete(supplier))
}

// GormPurchaseOrderRepository persists purchase orders through a database session
type GormPurchaseOrderRepository struct {
	session *database.Session
}

// NewGormPurchaseOrderRepository creates a purchase order repository bound to a session
func NewGormPurchaseOrderRepository(session *database.Session) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{session: session}
}

func (r *GormPurchaseOrderRepository) Create(_ context.Context, order *domain.PurchaseOrder) error {
	return translate(r.session.Insert(order))
}

func (r *GormPurchaseOrderRepository) FindByID(_ context.Context, id uint) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	if err := r.session.GetByID(&order, id); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.NewNotFound("purchase_order", id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormPurchaseOrderRepository) FindAll(_ context.Context) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	err := r.session.ListAll(&orders)
	return orders, err
}

func (r *GormPurchaseOrderRepository) FindBySupplierID(_ context.Context, supplierID uint) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	err := r.session.Filter(&orders, "supplier_id", supplierID)
	return orders, err
}

func (r *GormPurchaseOrderRepository) Update(_ context.Context, order *domain.PurchaseOrder) error {
	if err := r.session.Update(order); err != nil {
		if database.IsNotFound(err) {
			return domain.NewNotFound("purchase_order", order.ID)
		}
		return translate(err)
	}
	return nil
}

func (r *GormPurchaseOrderRepository) Delete(_ context.Context, order *domain.PurchaseOrder) error {
	return translate(r.session.Delete(order))
}

// translate wraps constraint failures in the matching domain sentinel
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrUniqueViolation, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrReferenceViolation, err)
	default:
		return err
	}
}
