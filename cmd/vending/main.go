package main

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/bootstrap"
	"github.com/joho/godotenv"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		defaultLogger.Error("failed to load .env file", "error", err.Error())
		return
	}

	cfg := bootstrap.LoadConfigFromEnv()

	httpLis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		defaultLogger.Error("failed to listen for http", "error", err.Error())
		return
	}

	grpcLis, err := net.Listen(networkProtocol, cfg.GrpcPort)
	if err != nil {
		_ = httpLis.Close()
		defaultLogger.Error("failed to listen for gRPC", "error", err.Error())
		return
	}

	app := bootstrap.NewVendingApp(cfg, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, httpLis, grpcLis); err != nil {
		defaultLogger.Error("vending app stopped with error", "error", err.Error())
	}
}
