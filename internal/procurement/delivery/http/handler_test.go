package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
	storetest "github.com/emuhs/s2p-api/internal/testutil"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type apiFixture struct {
	server  *httptest.Server
	metrics *Metrics
	store   domain.Store
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()

	store := storetest.Store(t)
	metrics := NewMetrics(prometheus.NewRegistry())
	handler := NewProcurementHandler(store, domain.NoopPublisher{}, metrics)

	cfg := DefaultMiddlewareConfig(5*time.Second, nil)
	srv := httptest.NewServer(NewRouter(handler, fakePinger{}, cfg, nil, nil))
	t.Cleanup(srv.Close)

	return &apiFixture{server: srv, metrics: metrics, store: store}
}

func (a *apiFixture) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestAcmeWidgetScenario(t *testing.T) {
	api := newAPI(t)

	status, raw := api.do(t, http.MethodPost, "/supplier", map[string]any{
		"name": "Acme", "email": "a@acme.com", "phone": "+1234567",
	})
	if status != http.StatusOK {
		t.Fatalf("create supplier: %d %s", status, raw)
	}
	supplier := decode[schema.SupplierOutput](t, raw)
	if supplier != (schema.SupplierOutput{ID: 1, Name: "Acme", Email: "a@acme.com", Phone: "+1234567"}) {
		t.Fatalf("unexpected supplier %+v", supplier)
	}

	status, raw = api.do(t, http.MethodPost, "/purchase_order", map[string]any{
		"supplier_id": 1, "item": "Widget", "quantity": 10,
	})
	if status != http.StatusOK {
		t.Fatalf("create order: %d %s", status, raw)
	}
	order := decode[schema.PurchaseOrderOutput](t, raw)
	if order.ID != 1 || order.SupplierID != 1 {
		t.Fatalf("unexpected order %+v", order)
	}

	status, raw = api.do(t, http.MethodGet, "/supplier/1/purchase_orders", nil)
	if status != http.StatusOK {
		t.Fatalf("list orders: %d %s", status, raw)
	}
	orders := decode[[]schema.PurchaseOrderOutput](t, raw)
	want := []schema.PurchaseOrderOutput{{ID: 1, SupplierID: 1, Item: "Widget", Quantity: 10}}
	if len(orders) != 1 || orders[0] != want[0] {
		t.Fatalf("got %+v, want %+v", orders, want)
	}

	if got := testutil.ToFloat64(api.metrics.writeCounter.WithLabelValues("supplier", "create")); got != 1 {
		t.Fatalf("expected one supplier write, got %v", got)
	}
}

func TestGetSupplierIsIdempotent(t *testing.T) {
	api := newAPI(t)
	storetest.SeedSupplier(t, api.store, "Acme", "a@acme.com", "+1234567")

	_, first := api.do(t, http.MethodGet, "/supplier/1", nil)
	_, second := api.do(t, http.MethodGet, "/supplier/1", nil)
	if !bytes.Equal(first, second) {
		t.Fatalf("repeated GET differs:\n%s\n%s", first, second)
	}
}

func TestCreateSupplierWithTrailingSlash(t *testing.T) {
	api := newAPI(t)

	status, raw := api.do(t, http.MethodPost, "/supplier/", map[string]any{
		"name": "Acme", "email": "a@acme.com", "phone": "+1234567",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", status, raw)
	}
}

func TestSupplierErrors(t *testing.T) {
	api := newAPI(t)
	s := storetest.SeedSupplier(t, api.store, "Acme", "a@acme.com", "+1234567")
	storetest.SeedSupplier(t, api.store, "Beta", "b@beta.com", "+1234568")
	storetest.SeedPurchaseOrder(t, api.store, s.ID, "Widget", 10)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		substr string
	}{
		{"duplicate email", http.MethodPost, "/supplier", map[string]any{"name": "X", "email": "a@acme.com", "phone": "+7654321"}, http.StatusBadRequest, "already exists"},
		{"short phone", http.MethodPost, "/supplier", map[string]any{"name": "X", "email": "x@x.com", "phone": "123-45"}, http.StatusUnprocessableEntity, `"field":"phone"`},
		{"malformed body", http.MethodPost, "/supplier", "{", http.StatusBadRequest, "invalid request body"},
		{"missing supplier", http.MethodGet, "/supplier/999999", nil, http.StatusNotFound, "not found"},
		{"non numeric id", http.MethodGet, "/supplier/abc", nil, http.StatusBadRequest, "invalid id"},
		{"id past 32 bits", http.MethodGet, "/supplier/4294967296", nil, http.StatusNotFound, "not found"},
		{"id past storable range", http.MethodGet, "/supplier/99999999999999999999", nil, http.StatusNotFound, "supplier 99999999999999999999 not found"},
		{"orders of id past storable range", http.MethodGet, "/supplier/99999999999999999999/purchase_orders", nil, http.StatusOK, "[]"},
		{"orders of non numeric id", http.MethodGet, "/supplier/abc/purchase_orders", nil, http.StatusBadRequest, "invalid id"},
		{"update to taken email", http.MethodPut, "/supplier/2", map[string]any{"name": "Beta", "email": "a@acme.com", "phone": "+1234568"}, http.StatusBadRequest, "already exists"},
		{"update missing", http.MethodPut, "/supplier/77", map[string]any{"name": "Z", "email": "z@z.com", "phone": "+1234567"}, http.StatusNotFound, "not found"},
		{"delete missing", http.MethodDelete, "/supplier/999999", nil, http.StatusNotFound, "not found"},
		{"delete with orders", http.MethodDelete, "/supplier/1", nil, http.StatusConflict, "cannot be deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := api.do(t, tt.method, tt.path, tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d (%s)", status, tt.status, raw)
			}
			if !strings.Contains(string(raw), tt.substr) {
				t.Fatalf("body %s does not contain %q", raw, tt.substr)
			}
		})
	}
}

func TestSupplierUpdateAndDelete(t *testing.T) {
	api := newAPI(t)
	storetest.SeedSupplier(t, api.store, "Acme", "a@acme.com", "+1234567")

	status, raw := api.do(t, http.MethodPut, "/supplier/1", map[string]any{
		"name": "Acme Ltd", "email": "sales@acme.com", "phone": "555-123-4567",
	})
	if status != http.StatusOK {
		t.Fatalf("update: %d %s", status, raw)
	}
	if got := decode[schema.SupplierOutput](t, raw); got.Email != "sales@acme.com" || got.ID != 1 {
		t.Fatalf("unexpected update result %+v", got)
	}

	status, raw = api.do(t, http.MethodDelete, "/supplier/1", nil)
	if status != http.StatusNoContent || len(raw) != 0 {
		t.Fatalf("delete: %d %q", status, raw)
	}

	status, raw = api.do(t, http.MethodGet, "/supplier/all", nil)
	if status != http.StatusOK || strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected empty list, got %d %s", status, raw)
	}
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	api := newAPI(t)
	storetest.SeedSupplier(t, api.store, "Acme", "a@acme.com", "+1234567")
	storetest.SeedSupplier(t, api.store, "Beta", "b@beta.com", "+1234568")

	status, raw := api.do(t, http.MethodPost, "/purchase_order/", map[string]any{"supplier_id": 1, "item": "Widget", "quantity": 10})
	if status != http.StatusOK {
		t.Fatalf("create: %d %s", status, raw)
	}

	status, raw = api.do(t, http.MethodPut, "/purchase_order/1", map[string]any{"supplier_id": 2, "item": "Gadget", "quantity": 3})
	if status != http.StatusOK {
		t.Fatalf("update: %d %s", status, raw)
	}

	status, raw = api.do(t, http.MethodGet, "/purchase_order/1", nil)
	want := schema.PurchaseOrderOutput{ID: 1, SupplierID: 2, Item: "Gadget", Quantity: 3}
	if status != http.StatusOK || decode[schema.PurchaseOrderOutput](t, raw) != want {
		t.Fatalf("get after update: %d %s", status, raw)
	}

	status, raw = api.do(t, http.MethodGet, "/purchase_order/all", nil)
	if status != http.StatusOK || len(decode[[]schema.PurchaseOrderOutput](t, raw)) != 1 {
		t.Fatalf("list: %d %s", status, raw)
	}

	status, _ = api.do(t, http.MethodDelete, "/purchase_order/1", nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: %d", status)
	}
	status, _ = api.do(t, http.MethodGet, "/purchase_order/1", nil)
	if status != http.StatusNotFound {
		t.Fatalf("get after delete: %d", status)
	}
}

func TestPurchaseOrderErrors(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown supplier", http.MethodPost, "/purchase_order", map[string]any{"supplier_id": 9, "item": "Widget", "quantity": 1}, http.StatusBadRequest},
		{"missing fields", http.MethodPost, "/purchase_order", map[string]any{"item": "Widget"}, http.StatusUnprocessableEntity},
		{"wrong type", http.MethodPost, "/purchase_order", `{"supplier_id":1,"item":"Widget","quantity":"ten"}`, http.StatusUnprocessableEntity},
		{"update missing", http.MethodPut, "/purchase_order/5", map[string]any{"supplier_id": 1, "item": "Widget", "quantity": 1}, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/purchase_order/5", nil, http.StatusNotFound},
		{"bad id", http.MethodGet, "/purchase_order/-1", nil, http.StatusBadRequest},
		{"large id", http.MethodGet, "/purchase_order/4294967296", nil, http.StatusNotFound},
		{"id past storable range", http.MethodDelete, "/purchase_order/18446744073709551615", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := api.do(t, tt.method, tt.path, tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d (%s)", status, tt.status, raw)
			}
		})
	}
}

func TestEmptySupplierOrdersIsEmptyArray(t *testing.T) {
	api := newAPI(t)
	storetest.SeedSupplier(t, api.store, "Acme", "a@acme.com", "+1234567")

	for _, path := range []string{"/supplier/1/purchase_orders", "/supplier/404/purchase_orders"} {
		status, raw := api.do(t, http.MethodGet, path, nil)
		if status != http.StatusOK || strings.TrimSpace(string(raw)) != "[]" {
			t.Fatalf("%s: expected [], got %d %s", path, status, raw)
		}
	}
}

func TestRootHealthAndHeaders(t *testing.T) {
	api := newAPI(t)

	req, _ := http.NewRequest(http.MethodGet, api.server.URL+"/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := api.server.Client().Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	var msg MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != RootMessage {
		t.Fatalf("unexpected root message %q", msg.Message)
	}
	if resp.Header.Get(RequestIDHeader) != "req-123" {
		t.Fatalf("request id not echoed: %q", resp.Header.Get(RequestIDHeader))
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing security headers")
	}

	status, _ := api.do(t, http.MethodGet, "/health", nil)
	if status != http.StatusOK {
		t.Fatalf("health: %d", status)
	}
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	handler := NewProcurementHandler(storetest.Store(t), domain.NoopPublisher{}, metrics)
	router := NewRouter(handler, fakePinger{err: errors.New("down")}, DefaultMiddlewareConfig(time.Second, nil), nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&domain.ValidationError{}, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", domain.NewNotFound("supplier", 1)), http.StatusNotFound},
		{&domain.DuplicateError{}, http.StatusBadRequest},
		{&domain.ReferenceError{}, http.StatusBadRequest},
		{&domain.ConflictError{}, http.StatusConflict},
		{fmt.Errorf("%w: eof", schema.ErrMalformedBody), http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, body := statusFor(tt.err)
		if status != tt.status {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, status, tt.status)
		}
		if status == http.StatusInternalServerError && body.Error != "internal server error" {
			t.Errorf("internal errors must not leak details, got %q", body.Error)
		}
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	h := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(RequestIDHeader) == "" {
			t.Errorf("request id missing on inbound request")
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("expected uuid request id, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestMetricsInstrumentRecordsStatus(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	h := m.Instrument("/x", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	if got := testutil.ToFloat64(m.requestCounter.WithLabelValues(http.MethodGet, "/x", "418")); got != 1 {
		t.Fatalf("expected one 418 request, got %v", got)
	}
}
