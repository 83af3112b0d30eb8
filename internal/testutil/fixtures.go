package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// SeedSupplier inserts and commits a supplier
func SeedSupplier(tb testing.TB, store domain.Store, name, email, phone string) *domain.Supplier {
	tb.Helper()

	uow, err := store.Begin(context.Background())
	if err != nil {
		tb.Fatalf("begin: %v", err)
	}
	defer uow.Close()

	s := &domain.Supplier{Name: name, Email: email, Phone: phone}
	if err := uow.Suppliers().Create(context.Background(), s); err != nil {
		tb.Fatalf("seed supplier: %v", err)
	}
	if err := uow.Commit(); err != nil {
		tb.Fatalf("commit: %v", err)
	}
	return s
}

// SeedPurchaseOrder inserts and commits a purchase order
func SeedPurchaseOrder(tb testing.TB, store domain.Store, supplierID uint, item string, quantity int) *domain.PurchaseOrder {
	tb.Helper()

	uow, err := store.Begin(context.Background())
	if err != nil {
		tb.Fatalf("begin: %v", err)
	}
	defer uow.Close()

	o := &domain.PurchaseOrder{SupplierID: supplierID, Item: item, Quantity: quantity}
	if err := uow.PurchaseOrders().Create(context.Background(), o); err != nil {
		tb.Fatalf("seed purchase order: %v", err)
	}
	if err := uow.Commit(); err != nil {
		tb.Fatalf("commit: %v", err)
	}
	return o
}

// RecordingPublisher captures published events
type RecordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	Err    error
}

// Publish implements domain.EventPublisher
func (p *RecordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Event(nil), p.events...)
}

// Types returns the recorded event types in publish order
func (p *RecordingPublisher) Types() []string {
	events := p.Events()
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
