package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger UI for the Source-to-Pay API
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// RootDoc godoc
// @Summary Liveness message
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *ProcurementHandler) RootDoc() {}

// CreateSupplierDoc godoc
// @Summary Create supplier
// @Description Create a supplier. Email must be unique; phone is 7-15 characters with at least 7 digits.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body schema.SupplierInput true "Supplier data"
// @Success 200 {object} schema.SupplierOutput
// @Failure 400 {object} ErrorResponse "Duplicate email or malformed body"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /supplier [post]
func (h *ProcurementHandler) CreateSupplierDoc() {}

// ListSuppliersDoc godoc
// @Summary List suppliers
// @Tags Supplier
// @Produce json
// @Success 200 {array} schema.SupplierOutput
// @Router /supplier/all [get]
func (h *ProcurementHandler) ListSuppliersDoc() {}

// GetSupplierDoc godoc
// @Summary Get supplier by ID
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} schema.SupplierOutput
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /supplier/{id} [get]
func (h *ProcurementHandler) GetSupplierDoc() {}

// UpdateSupplierDoc godoc
// @Summary Replace supplier
// @Description Replace every field of a supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body schema.SupplierInput true "Supplier data"
// @Success 200 {object} schema.SupplierOutput
// @Failure 400 {object} ErrorResponse "Duplicate email or malformed body"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /supplier/{id} [put]
func (h *ProcurementHandler) UpdateSupplierDoc() {}

// DeleteSupplierDoc godoc
// @Summary Delete supplier
// @Tags Supplier
// @Param id path int true "Supplier ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Purchase orders still reference the supplier"
// @Router /supplier/{id} [delete]
func (h *ProcurementHandler) DeleteSupplierDoc() {}

// ListSupplierPurchaseOrdersDoc godoc
// @Summary List purchase orders of a supplier
// @Description Returns an empty list when the supplier has no orders or does not exist
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {array} schema.PurchaseOrderOutput
// @Router /supplier/{id}/purchase_orders [get]
func (h *ProcurementHandler) ListSupplierPurchaseOrdersDoc() {}

// CreatePurchaseOrderDoc godoc
// @Summary Create purchase order
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Param request body schema.PurchaseOrderInput true "Purchase order data"
// @Success 200 {object} schema.PurchaseOrderOutput
// @Failure 400 {object} ErrorResponse "Unknown supplier or malformed body"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /purchase_order [post]
func (h *ProcurementHandler) CreatePurchaseOrderDoc() {}

// ListPurchaseOrdersDoc godoc
// @Summary List purchase orders
// @Tags PurchaseOrder
// @Produce json
// @Success 200 {array} schema.PurchaseOrderOutput
// @Router /purchase_order/all [get]
func (h *ProcurementHandler) ListPurchaseOrdersDoc() {}

// GetPurchaseOrderDoc godoc
// @Summary Get purchase order by ID
// @Tags PurchaseOrder
// @Produce json
// @Param id path int true "Purchase order ID"
// @Success 200 {object} schema.PurchaseOrderOutput
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /purchase_order/{id} [get]
func (h *ProcurementHandler) GetPurchaseOrderDoc() {}

// UpdatePurchaseOrderDoc godoc
// @Summary Replace purchase order
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Param id path int true "Purchase order ID"
// @Param request body schema.PurchaseOrderInput true "Purchase order data"
// @Success 200 {object} schema.PurchaseOrderOutput
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /purchase_order/{id} [put]
func (h *ProcurementHandler) UpdatePurchaseOrderDoc() {}

// DeletePurchaseOrderDoc godoc
// @Summary Delete purchase order
// @Tags PurchaseOrder
// @Param id path int true "Purchase order ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /purchase_order/{id} [delete]
func (h *ProcurementHandler) DeletePurchaseOrderDoc() {}

// HealthCheckDoc godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *ProcurementHandler) HealthCheckDoc() {}
