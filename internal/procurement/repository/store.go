package repository

import (
	"context"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/pkg/database"
)

// GormStore opens units of work on top of the persistence gateway
type GormStore struct {
	gateway *database.Gateway
	tracing bool
}

// NewGormStore creates a store whose repositories are wrapped with tracing spans
func NewGormStore(gateway *database.Gateway) *GormStore {
	return &GormStore{gateway: gateway, tracing: true}
}

// NewUntracedGormStore creates a store without span decorators
func NewUntracedGormStore(gateway *database.Gateway) *GormStore {
	return &GormStore{gateway: gateway}
}

// Begin starts a new unit of work
func (s *GormStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	session, err := s.gateway.Begin(ctx)
	if err != nil {
		return nil, err
	}

	var suppliers domain.SupplierRepository = NewGormSupplierRepository(session)
	var orders domain.PurchaseOrderRepository = NewGormPurchaseOrderRepository(session)
	if s.tracing {
		suppliers = NewSupplierRepositoryWithTracing(suppliers)
		orders = NewPurchaseOrderRepositoryWithTracing(orders)
	}

	return &unitOfWork{
		session:   session,
		suppliers: suppliers,
		orders:    orders,
	}, nil
}

type unitOfWork struct {
	session   *database.Session
	suppliers domain.SupplierRepository
	orders    domain.PurchaseOrderRepository
}

func (u *unitOfWork) Suppliers() domain.SupplierRepository {
	return u.suppliers
}

func (u *unitOfWork) PurchaseOrders() domain.PurchaseOrderRepository {
	return u.orders
}

func (u *unitOfWork) Commit() error {
	return translate(u.session.Commit())
}

func (u *unitOfWork) Rollback() error {
	return u.session.Rollback()
}

func (u *unitOfWork) Close() error {
	return u.session.Close()
}
