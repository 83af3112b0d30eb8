package procurement

import (
	"github.com/google/wire"

	grpcDelivery "github.com/emuhs/s2p-api/internal/procurement/delivery/grpc"
	"github.com/emuhs/s2p-api/internal/procurement/delivery/http"
	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/repository"
	"github.com/emuhs/s2p-api/internal/procurement/usecase/command"
	"github.com/emuhs/s2p-api/internal/procurement/usecase/query"
	"github.com/emuhs/s2p-api/pkg/database"
)

// ProvideStore provides the traced procurement store
func ProvideStore(gateway *database.Gateway) domain.Store {
	return repository.NewGormStore(gateway)
}

// ProvidePinger exposes the gateway as a health probe target
func ProvidePinger(gateway *database.Gateway) grpcDelivery.Pinger {
	return gateway
}

// Wire sets
var StoreSet = wire.NewSet(
	database.NewGateway,
	ProvideStore,
)

var CommandSet = wire.NewSet(
	command.NewCreateSupplierHandler,
	command.NewUpdateSupplierHandler,
	command.NewDeleteSupplierHandler,
	command.NewCreatePurchaseOrderHandler,
	command.NewUpdatePurchaseOrderHandler,
	command.NewDeletePurchaseOrderHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetSupplierHandler,
	query.NewListSuppliersHandler,
	query.NewListSupplierPurchaseOrdersHandler,
	query.NewGetPurchaseOrderHandler,
	query.NewListPurchaseOrdersHandler,
)

var HTTPSet = wire.NewSet(
	http.NewMetrics,
	http.NewProcurementHandlerWithDI,
)
