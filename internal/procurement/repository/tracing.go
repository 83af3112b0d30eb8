package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

var tracer = otel.Tracer("procurement-repository")

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SupplierRepositoryWithTracing wraps a supplier repository with spans
type SupplierRepositoryWithTracing struct {
	next domain.SupplierRepository
}

// NewSupplierRepositoryWithTracing creates a new repository with tracing
func NewSupplierRepositoryWithTracing(next domain.SupplierRepository) *SupplierRepositoryWithTracing {
	return &SupplierRepositoryWithTracing{next: next}
}

func (r *SupplierRepositoryWithTracing) Create(ctx context.Context, supplier *domain.Supplier) (err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.Create",
		trace.WithAttributes(
			attribute.String("supplier.name", supplier.Name),
			attribute.String("supplier.email", supplier.Email),
		),
	)
	defer func() { finish(span, err) }()

	if err = r.next.Create(ctx, supplier); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("supplier.id", int(supplier.ID)))
	return nil
}

func (r *SupplierRepositoryWithTracing) FindByID(ctx context.Context, id uint) (supplier *domain.Supplier, err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.FindByID",
		trace.WithAttributes(attribute.Int("supplier.id", int(id))),
	)
	defer func() { finish(span, err) }()

	return r.next.FindByID(ctx, id)
}

func (r *SupplierRepositoryWithTracing) FindByEmail(ctx context.Context, email string) (supplier *domain.Supplier, err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.FindByEmail",
		trace.WithAttributes(attribute.String("supplier.email", email)),
	)
	defer func() { finish(span, err) }()

	supplier, err = r.next.FindByEmail(ctx, email)
	span.SetAttributes(attribute.Bool("result.found", supplier != nil))
	return supplier, err
}

func (r *SupplierRepositoryWithTracing) FindAll(ctx context.Context) (suppliers []domain.Supplier, err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.FindAll")
	defer func() { finish(span, err) }()

	suppliers, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(suppliers)))
	return suppliers, err
}

func (r *SupplierRepositoryWithTracing) Update(ctx context.Context, supplier *domain.Supplier) (err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.Update",
		trace.WithAttributes(
			attribute.Int("supplier.id", int(supplier.ID)),
			attribute.String("supplier.email", supplier.Email),
		),
	)
	defer func() { finish(span, err) }()

	return r.next.Update(ctx, supplier)
}

func (r *SupplierRepositoryWithTracing) Delete(ctx context.Context, supplier *domain.Supplier) (err error) {
	ctx, span := tracer.Start(ctx, "repository.supplier.Delete",
		trace.WithAttributes(attribute.Int("supplier.id", int(supplier.ID))),
	)
	defer func() { finish(span, err) }()

	return r.next.Delete(ctx, supplier)
}

// PurchaseOrderRepositoryWithTracing wraps a purchase order repository with spans
type PurchaseOrderRepositoryWithTracing struct {
	next domain.PurchaseOrderRepository
}

// NewPurchaseOrderRepositoryWithTracing creates a new repository with tracing
func NewPurchaseOrderRepositoryWithTracing(next domain.PurchaseOrderRepository) *PurchaseOrderRepositoryWithTracing {
	return &PurchaseOrderRepositoryWithTracing{next: next}
}

func (r *PurchaseOrderRepositoryWithTracing) Create(ctx context.Context, order *domain.PurchaseOrder) (err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.Create",
		trace.WithAttributes(
			attribute.Int("purchase_order.supplier_id", int(order.SupplierID)),
			attribute.String("purchase_order.item", order.Item),
			attribute.Int("purchase_order.quantity", order.Quantity),
		),
	)
	defer func() { finish(span, err) }()

	if err = r.next.Create(ctx, order); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("purchase_order.id", int(order.ID)))
	return nil
}

func (r *PurchaseOrderRepositoryWithTracing) FindByID(ctx context.Context, id uint) (order *domain.PurchaseOrder, err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.FindByID",
		trace.WithAttributes(attribute.Int("purchase_order.id", int(id))),
	)
	defer func() { finish(span, err) }()

	return r.next.FindByID(ctx, id)
}

func (r *PurchaseOrderRepositoryWithTracing) FindAll(ctx context.Context) (orders []domain.PurchaseOrder, err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.FindAll")
	defer func() { finish(span, err) }()

	orders, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, err
}

func (r *PurchaseOrderRepositoryWithTracing) FindBySupplierID(ctx context.Context, supplierID uint) (orders []domain.PurchaseOrder, err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.FindBySupplierID",
		trace.WithAttributes(attribute.Int("purchase_order.supplier_id", int(supplierID))),
	)
	defer func() { finish(span, err) }()

	orders, err = r.next.FindBySupplierID(ctx, supplierID)
	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, err
}

func (r *PurchaseOrderRepositoryWithTracing) Update(ctx context.Context, order *domain.PurchaseOrder) (err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.Update",
		trace.WithAttributes(
			attribute.Int("purchase_order.id", int(order.ID)),
			attribute.Int("purchase_order.supplier_id", int(order.SupplierID)),
		),
	)
	defer func() { finish(span, err) }()

	return r.next.Update(ctx, order)
}

func (r *PurchaseOrderRepositoryWithTracing) Delete(ctx context.Context, order *domain.PurchaseOrder) (err error) {
	ctx, span := tracer.Start(ctx, "repository.purchase_order.Delete",
		trace.WithAttributes(attribute.Int("purchase_order.id", int(order.ID))),
	)
	defer func() { finish(span, err) }()

	return r.next.Delete(ctx, order)
}
