// Package grpc exposes the standard gRPC health service of the ledger
// server.
package grpc

import (
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// LedgerServiceName is the health service name reported for the ledger.
const LedgerServiceName = "agreementkeeper.Ledger"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health service reports SERVING for the
// server as a whole and for [LedgerServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(LedgerServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the handler's services to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// Shutdown switches every service to NOT_SERVING so that clients stop
// routing before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("marking gRPC services as not serving")
	h.health.Shutdown()
}
