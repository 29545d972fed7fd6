package grpc

import (
	"context"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type LoggingInterceptorFabric struct {
	logger logging.Logger
}

func NewLoggingInterceptorFabric(logger logging.Logger) *LoggingInterceptorFabric {
	return &LoggingInterceptorFabric{
		logger: logger,
	}
}

func (i *LoggingInterceptorFabric) GetInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			i.logger.Warn("grpc call failed",
				"method", info.FullMethod,
				"code", status.Code(err).String(),
				"latency", time.Since(start).String(),
			)
			return resp, err
		}

		i.logger.Info("grpc call handled",
			"method", info.FullMethod,
			"latency", time.Since(start).String(),
		)

		return resp, nil
	}
}
