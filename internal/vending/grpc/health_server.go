package grpc

import (
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VendingServiceName is the service name reported by the health server next
// to the overall "" status.
const VendingServiceName = "vending.v1.VendingMachine"

func NewHealthServer() *health.Server {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(VendingServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return healthServer
}

func SetServing(healthServer *health.Server, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	healthServer.SetServingStatus("", status)
	healthServer.SetServingStatus(VendingServiceName, status)
}

func NewGRPCServer(healthServer *health.Server, logger logging.Logger) *grpc.Server {
	loggingInterceptorFabric := NewLoggingInterceptorFabric(logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggingInterceptorFabric.GetInterceptor()),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer
}
