package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

func TestDBIsIsolatedPerCall(t *testing.T) {
	first := Store(t)
	SeedSupplier(t, first, "Acme", "a@acme.com", "+1234567")

	second := Store(t)
	uow, err := second.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer uow.Close()

	all, err := uow.Suppliers().FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected isolated database, found %d suppliers", len(all))
	}
}

func TestRecordingPublisher(t *testing.T) {
	p := &RecordingPublisher{}
	_ = p.Publish(context.Background(), domain.Event{Type: domain.EventSupplierCreated, EntityID: 1})

	p.Err = errors.New("broker down")
	if err := p.Publish(context.Background(), domain.Event{Type: domain.EventSupplierDeleted}); err == nil {
		t.Fatalf("expected configured error")
	}

	types := p.Types()
	if len(types) != 2 || types[0] != domain.EventSupplierCreated || types[1] != domain.EventSupplierDeleted {
		t.Fatalf("unexpected events %v", types)
	}
}
