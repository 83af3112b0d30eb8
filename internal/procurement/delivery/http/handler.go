package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
	"github.com/emuhs/s2p-api/internal/procurement/usecase/command"
	"github.com/emuhs/s2p-api/internal/procurement/usecase/query"
)

// RootMessage is returned by GET /
const RootMessage = "S2P System is Live"

var errInvalidID = errors.New("invalid id")

// ProcurementHandler handles HTTP requests for suppliers and purchase orders using CQRS pattern
type ProcurementHandler struct {
	// Command handlers
	createSupplier      *command.CreateSupplierHandler
	updateSupplier      *command.UpdateSupplierHandler
	deleteSupplier      *command.DeleteSupplierHandler
	createPurchaseOrder *command.CreatePurchaseOrderHandler
	updatePurchaseOrder *command.UpdatePurchaseOrderHandler
	deletePurchaseOrder *command.DeletePurchaseOrderHandler

	// Query handlers
	getSupplier        *query.GetSupplierHandler
	listSuppliers      *query.ListSuppliersHandler
	listSupplierOrders *query.ListSupplierPurchaseOrdersHandler
	getPurchaseOrder   *query.GetPurchaseOrderHandler
	listPurchaseOrders *query.ListPurchaseOrdersHandler

	metrics *Metrics
}

// NewProcurementHandler builds every command and query handler from a store (manual DI)
func NewProcurementHandler(store domain.Store, publisher domain.EventPublisher, metrics *Metrics) *ProcurementHandler {
	return NewProcurementHandlerWithDI(
		command.NewCreateSupplierHandler(store, publisher),
		command.NewUpdateSupplierHandler(store, publisher),
		command.NewDeleteSupplierHandler(store, publisher),
		command.NewCreatePurchaseOrderHandler(store, publisher),
		command.NewUpdatePurchaseOrderHandler(store, publisher),
		command.NewDeletePurchaseOrderHandler(store, publisher),
		query.NewGetSupplierHandler(store),
		query.NewListSuppliersHandler(store),
		query.NewListSupplierPurchaseOrdersHandler(store),
		query.NewGetPurchaseOrderHandler(store),
		query.NewListPurchaseOrdersHandler(store),
		metrics,
	)
}

// NewProcurementHandlerWithDI creates a handler from prebuilt command and query handlers.
// This is used by Wire for automatic dependency injection
func NewProcurementHandlerWithDI(
	createSupplier *command.CreateSupplierHandler,
	updateSupplier *command.UpdateSupplierHandler,
	deleteSupplier *command.DeleteSupplierHandler,
	createPurchaseOrder *command.CreatePurchaseOrderHandler,
	updatePurchaseOrder *command.UpdatePurchaseOrderHandler,
	deletePurchaseOrder *command.DeletePurchaseOrderHandler,
	getSupplier *query.GetSupplierHandler,
	listSuppliers *query.ListSuppliersHandler,
	listSupplierOrders *query.ListSupplierPurchaseOrdersHandler,
	getPurchaseOrder *query.GetPurchaseOrderHandler,
	listPurchaseOrders *query.ListPurchaseOrdersHandler,
	metrics *Metrics,
) *ProcurementHandler {
	return &ProcurementHandler{
		createSupplier:      createSupplier,
		updateSupplier:      updateSupplier,
		deleteSupplier:      deleteSupplier,
		createPurchaseOrder: createPurchaseOrder,
		updatePurchaseOrder: updatePurchaseOrder,
		deletePurchaseOrder: deletePurchaseOrder,
		getSupplier:         getSupplier,
		listSuppliers:       listSuppliers,
		listSupplierOrders:  listSupplierOrders,
		getPurchaseOrder:    getPurchaseOrder,
		listPurchaseOrders:  listPurchaseOrders,
		metrics:             metrics,
	}
}

// RegisterRoutes registers the procurement API on router.
// The /all routes are registered before /{id} so they win the match.
func (h *ProcurementHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics.Instrument

	router.HandleFunc("/", m("/", h.Root)).Methods(http.MethodGet)

	router.HandleFunc("/supplier", m("/supplier", h.CreateSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/supplier/", m("/supplier", h.CreateSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/supplier/all", m("/supplier/all", h.ListSuppliers)).Methods(http.MethodGet)
	router.HandleFunc("/supplier/{id}", m("/supplier/{id}", h.GetSupplier)).Methods(http.MethodGet)
	router.HandleFunc("/supplier/{id}", m("/supplier/{id}", h.UpdateSupplier)).Methods(http.MethodPut)
	router.HandleFunc("/supplier/{id}", m("/supplier/{id}", h.DeleteSupplier)).Methods(http.MethodDelete)
	router.HandleFunc("/supplier/{id}/purchase_orders", m("/supplier/{id}/purchase_orders", h.ListSupplierPurchaseOrders)).Methods(http.MethodGet)

	router.HandleFunc("/purchase_order", m("/purchase_order", h.CreatePurchaseOrder)).Methods(http.MethodPost)
	router.HandleFunc("/purchase_order/", m("/purchase_order", h.CreatePurchaseOrder)).Methods(http.MethodPost)
	router.HandleFunc("/purchase_order/all", m("/purchase_order/all", h.ListPurchaseOrders)).Methods(http.MethodGet)
	router.HandleFunc("/purchase_order/{id}", m("/purchase_order/{id}", h.GetPurchaseOrder)).Methods(http.MethodGet)
	router.HandleFunc("/purchase_order/{id}", m("/purchase_order/{id}", h.UpdatePurchaseOrder)).Methods(http.MethodPut)
	router.HandleFunc("/purchase_order/{id}", m("/purchase_order/{id}", h.DeletePurchaseOrder)).Methods(http.MethodDelete)
}

// Pinger reports storage reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterHealthCheck registers health check endpoint
func (h *ProcurementHandler) RegisterHealthCheck(router *mux.Router, db Pinger) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, MessageResponse{Message: "S2P service is healthy"})
	}).Methods(http.MethodGet)
}

// Root handles GET /
func (h *ProcurementHandler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: RootMessage})
}

// CreateSupplier handles POST /supplier
func (h *ProcurementHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var input schema.SupplierInput
	if err := schema.Decode(r.Body, &input); err != nil {
		respondError(w, r, err)
		return
	}

	supplier, err := h.createSupplier.Handle(r.Context(), command.CreateSupplierCommand{Input: input})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("supplier", "create")
	respondJSON(w, http.StatusOK, schema.NewSupplierOutput(supplier))
}

// ListSuppliers handles GET /supplier/all
func (h *ProcurementHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.listSuppliers.Handle(r.Context(), query.ListSuppliersQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.NewSupplierOutputs(suppliers))
}

// GetSupplier handles GET /supplier/{id}
func (h *ProcurementHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	supplier, err := h.getSupplier.Handle(r.Context(), query.GetSupplierQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.NewSupplierOutput(supplier))
}

// UpdateSupplier handles PUT /supplier/{id}
func (h *ProcurementHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	var input schema.SupplierInput
	if err := schema.Decode(r.Body, &input); err != nil {
		respondError(w, r, err)
		return
	}

	supplier, err := h.updateSupplier.Handle(r.Context(), command.UpdateSupplierCommand{ID: id, Input: input})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("supplier", "update")
	respondJSON(w, http.StatusOK, schema.NewSupplierOutput(supplier))
}

// DeleteSupplier handles DELETE /supplier/{id}
func (h *ProcurementHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	if err := h.deleteSupplier.Handle(r.Context(), command.DeleteSupplierCommand{ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("supplier", "delete")
	w.WriteHeader(http.StatusNoContent)
}

// ListSupplierPurchaseOrders handles GET /supplier/{id}/purchase_orders
func (h *ProcurementHandler) ListSupplierPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if errors.Is(err, strconv.ErrRange) {
		// no supplier can carry this id, so it has no orders
		respondJSON(w, http.StatusOK, []schema.PurchaseOrderOutput{})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: errInvalidID.Error()})
		return
	}

	orders, err := h.listSupplierOrders.Handle(r.Context(), query.ListSupplierPurchaseOrdersQuery{SupplierID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.NewPurchaseOrderOutputs(orders))
}

// CreatePurchaseOrder handles POST /purchase_order
func (h *ProcurementHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var input schema.PurchaseOrderInput
	if err := schema.Decode(r.Body, &input); err != nil {
		respondError(w, r, err)
		return
	}

	order, err := h.createPurchaseOrder.Handle(r.Context(), command.CreatePurchaseOrderCommand{Input: input})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("purchase_order", "create")
	respondJSON(w, http.StatusOK, schema.NewPurchaseOrderOutput(order))
}

// ListPurchaseOrders handles GET /purchase_order/all
func (h *ProcurementHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listPurchaseOrders.Handle(r.Context(), query.ListPurchaseOrdersQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.NewPurchaseOrderOutputs(orders))
}

// GetPurchaseOrder handles GET /purchase_order/{id}
func (h *ProcurementHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "purchase_order")
	if !ok {
		return
	}

	order, err := h.getPurchaseOrder.Handle(r.Context(), query.GetPurchaseOrderQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.NewPurchaseOrderOutput(order))
}

// UpdatePurchaseOrder handles PUT /purchase_order/{id}
func (h *ProcurementHandler) UpdatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "purchase_order")
	if !ok {
		return
	}

	var input schema.PurchaseOrderInput
	if err := schema.Decode(r.Body, &input); err != nil {
		respondError(w, r, err)
		return
	}

	order, err := h.updatePurchaseOrder.Handle(r.Context(), command.UpdatePurchaseOrderCommand{ID: id, Input: input})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("purchase_order", "update")
	respondJSON(w, http.StatusOK, schema.NewPurchaseOrderOutput(order))
}

// DeletePurchaseOrder handles DELETE /purchase_order/{id}
func (h *ProcurementHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "purchase_order")
	if !ok {
		return
	}

	if err := h.deletePurchaseOrder.Handle(r.Context(), command.DeletePurchaseOrderCommand{ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.RecordWrite("purchase_order", "delete")
	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the {id} route variable. Keys are signed 64-bit in every supported store,
// so larger numbers fail with strconv.ErrRange.
func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 63)
	return uint(id), err
}

// pathID parses the {id} route variable. Non-numeric ids get a 400; numeric ids past the
// largest storable key get a 404 for entity, since no row can carry them.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (uint, bool) {
	id, err := parseID(r)
	switch {
	case err == nil:
		return id, true
	case errors.Is(err, strconv.ErrRange):
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("%s %s not found", entity, mux.Vars(r)["id"])})
	default:
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: errInvalidID.Error()})
	}
	return 0, false
}
