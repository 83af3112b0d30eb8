package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter assembles the API with its middlewares, health check, metrics and docs.
// metricsHandler and swaggerHandler are optional.
func NewRouter(h *ProcurementHandler, db Pinger, config *MiddlewareConfig, metricsHandler, swaggerHandler http.Handler) http.Handler {
	router := mux.NewRouter()
	RegisterMiddlewares(router, config)

	h.RegisterRoutes(router)
	h.RegisterHealthCheck(router, db)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}
	if swaggerHandler != nil {
		RegisterSwaggerDocs(router, swaggerHandler)
	}

	return SetupCORS(config)(router)
}
