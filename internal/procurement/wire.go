//go:build wireinject
// +build wireinject

package procurement

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	grpcDelivery "github.com/emuhs/s2p-api/internal/procurement/delivery/grpc"
	"github.com/emuhs/s2p-api/internal/procurement/delivery/http"
	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/pkg/database"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher domain.EventPublisher, reg prometheus.Registerer) (*http.ProcurementHandler, error) {
	wire.Build(
		StoreSet,
		CommandSet,
		QuerySet,
		HTTPSet,
	)
	return nil, nil
}

// InitializeHealthServer initializes the gRPC health server probing the database
func InitializeHealthServer(db *gorm.DB, interval time.Duration) *grpcDelivery.HealthServer {
	wire.Build(
		database.NewGateway,
		ProvidePinger,
		grpcDelivery.NewHealthServer,
	)
	return nil
}
