package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/repository"
	"github.com/emuhs/s2p-api/internal/testutil"
)

func begin(t *testing.T, store domain.Store) domain.UnitOfWork {
	t.Helper()
	uow, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	t.Cleanup(func() { _ = uow.Close() })
	return uow
}

func TestSupplierCreateAndFind(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	uow := begin(t, store)

	s := &domain.Supplier{Name: "Acme", Email: "a@acme.com", Phone: "+1234567"}
	if err := uow.Suppliers().Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID != 1 {
		t.Fatalf("expected id 1, got %d", s.ID)
	}

	got, err := uow.Suppliers().FindByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if *got != *s {
		t.Fatalf("got %+v, want %+v", got, s)
	}

	byEmail, err := uow.Suppliers().FindByEmail(ctx, "a@acme.com")
	if err != nil || byEmail == nil || byEmail.ID != s.ID {
		t.Fatalf("FindByEmail = %+v, %v", byEmail, err)
	}

	missing, err := uow.Suppliers().FindByEmail(ctx, "nobody@acme.com")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown email, got %+v, %v", missing, err)
	}
}

func TestSupplierFindByIDNotFound(t *testing.T) {
	uow := begin(t, testutil.Store(t))

	_, err := uow.Suppliers().FindByID(context.Background(), 999999)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "supplier" || nf.ID != 999999 {
		t.Fatalf("expected supplier NotFoundError, got %v", err)
	}
}

func TestSupplierUniqueEmail(t *testing.T) {
	store := testutil.Store(t)
	testutil.SeedSupplier(t, store, "Acme", "a@acme.com", "+1234567")

	uow := begin(t, store)
	err := uow.Suppliers().Create(context.Background(), &domain.Supplier{Name: "Other", Email: "a@acme.com", Phone: "+7654321"})
	if !errors.Is(err, domain.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

func TestListsAreOrderedByID(t *testing.T) {
	store := testutil.Store(t)
	b := testutil.SeedSupplier(t, store, "Beta", "b@beta.com", "+1234567")
	a := testutil.SeedSupplier(t, store, "Alpha", "a@alpha.com", "+1234568")
	testutil.SeedPurchaseOrder(t, store, a.ID, "Nut", 3)
	testutil.SeedPurchaseOrder(t, store, b.ID, "Bolt", 1)
	testutil.SeedPurchaseOrder(t, store, a.ID, "Washer", 9)

	uow := begin(t, store)
	ctx := context.Background()

	suppliers, err := uow.Suppliers().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(suppliers) != 2 || suppliers[0].Name != "Beta" || suppliers[1].Name != "Alpha" {
		t.Fatalf("unexpected order %+v", suppliers)
	}

	orders, err := uow.PurchaseOrders().FindBySupplierID(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindBySupplierID: %v", err)
	}
	if len(orders) != 2 || orders[0].Item != "Nut" || orders[1].Item != "Washer" {
		t.Fatalf("unexpected orders %+v", orders)
	}

	none, err := uow.PurchaseOrders().FindBySupplierID(ctx, 424242)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no orders for unknown supplier, got %+v, %v", none, err)
	}
}

func TestPurchaseOrderRequiresExistingSupplier(t *testing.T) {
	uow := begin(t, testutil.Store(t))

	err := uow.PurchaseOrders().Create(context.Background(), &domain.PurchaseOrder{SupplierID: 77, Item: "Widget", Quantity: 1})
	if !errors.Is(err, domain.ErrReferenceViolation) {
		t.Fatalf("expected ErrReferenceViolation, got %v", err)
	}
}

func TestSupplierDeleteRestrictedWhileOrdersExist(t *testing.T) {
	store := testutil.Store(t)
	s := testutil.SeedSupplier(t, store, "Acme", "a@acme.com", "+1234567")
	testutil.SeedPurchaseOrder(t, store, s.ID, "Widget", 10)

	uow := begin(t, store)
	err := uow.Suppliers().Delete(context.Background(), s)
	if !errors.Is(err, domain.ErrReferenceViolation) {
		t.Fatalf("expected ErrReferenceViolation, got %v", err)
	}
}

func TestIdentifiersAreNotReused(t *testing.T) {
	store := testutil.Store(t)
	first := testutil.SeedSupplier(t, store, "Acme", "a@acme.com", "+1234567")

	uow := begin(t, store)
	if err := uow.Suppliers().Delete(context.Background(), first); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uow.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	second := testutil.SeedSupplier(t, store, "Acme", "a@acme.com", "+1234567")
	if second.ID == first.ID {
		t.Fatalf("identifier %d was reused", second.ID)
	}
}

func TestUpdateOfDeletedRowIsNotFound(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	supplier := testutil.SeedSupplier(t, store, "Acme", "a@acme.com", "+1234567")
	order := testutil.SeedPurchaseOrder(t, store, supplier.ID, "Widget", 10)

	uow := begin(t, store)
	loadedOrder, err := uow.PurchaseOrders().FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("FindByID order: %v", err)
	}
	if err := uow.PurchaseOrders().Delete(ctx, &domain.PurchaseOrder{ID: order.ID}); err != nil {
		t.Fatalf("Delete order: %v", err)
	}
	loadedOrder.Quantity = 3
	err = uow.PurchaseOrders().Update(ctx, loadedOrder)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "purchase_order" || nf.ID != order.ID {
		t.Fatalf("expected purchase_order NotFoundError, got %v", err)
	}

	loaded, err := uow.Suppliers().FindByID(ctx, supplier.ID)
	if err != nil {
		t.Fatalf("FindByID supplier: %v", err)
	}
	if err := uow.Suppliers().Delete(ctx, &domain.Supplier{ID: supplier.ID}); err != nil {
		t.Fatalf("Delete supplier: %v", err)
	}
	loaded.Name = "Acme Ltd"
	err = uow.Suppliers().Update(ctx, loaded)
	if !errors.As(err, &nf) || nf.Entity != "supplier" || nf.ID != supplier.ID {
		t.Fatalf("expected supplier NotFoundError, got %v", err)
	}
	if err := uow.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	check := begin(t, store)
	suppliers, err := check.Suppliers().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll suppliers: %v", err)
	}
	orders, err := check.PurchaseOrders().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll orders: %v", err)
	}
	if len(suppliers) != 0 || len(orders) != 0 {
		t.Fatalf("deleted rows came back: suppliers=%+v orders=%+v", suppliers, orders)
	}
}

func TestUnitOfWorkCloseDiscardsUncommitted(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()

	uow, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := uow.Suppliers().Create(ctx, &domain.Supplier{Name: "Acme", Email: "a@acme.com", Phone: "+1234567"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := uow.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	check := begin(t, store)
	all, err := check.Suppliers().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected uncommitted supplier to be discarded, got %d", len(all))
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	if !db.Migrator().HasTable("suppliers") || !db.Migrator().HasTable("purchase_orders") {
		t.Fatalf("expected both tables to exist")
	}
}
