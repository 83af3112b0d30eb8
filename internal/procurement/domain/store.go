package domain

import "context"

// UnitOfWork is a scoped session over the store.
// Repositories returned by it share one transaction; Close must be deferred by the caller
// and rolls back anything not committed.
type UnitOfWork interface {
	Suppliers() SupplierRepository
	PurchaseOrders() PurchaseOrderRepository
	Commit() error
	Rollback() error
	Close() error
}

// Store opens units of work
type Store interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
