package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/application"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	grpcwrap "github.com/MikhailWahib/vending-machine-api/internal/vending/grpc"
	httpwrap "github.com/MikhailWahib/vending-machine-api/internal/vending/infrastructure/http"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/infrastructure/postgres"
	redisstore "github.com/MikhailWahib/vending-machine-api/internal/vending/infrastructure/redis"
	"github.com/MikhailWahib/vending-machine-api/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
	migrationsDir     = "."
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	httpServer   *http.Server
	grpcServer   *grpc.Server
	healthServer *health.Server
	dbpool       *pgxpool.Pool
	redisClient  *goredis.Client

	shutdownOnce sync.Once
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves HTTP and gRPC until ctx is cancelled or one of the servers
// fails, then shuts both down.
func (a *VendingApp) Run(ctx context.Context, httpLis, grpcLis net.Listener) error {
	logger := a.logger
	cfg := a.cfg

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dbURL := cfg.DbSettings.GetURL()

	if err := database.MigrateDatabase(ctx, dbURL, migrations.FS, migrationsDir, migrationsDriver, migrationsDialect); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	tokenRevoker, err := a.createTokenRevoker(ctx)
	if err != nil {
		dbpool.Close()
		return err
	}

	txManager := database.NewDelegateTxManager(dbpool, logger,
		database.WithLockTimeout(cfg.LockTimeout),
		database.WithMaxAttempts(cfg.TxMaxAttempts),
	)

	usersRepository := postgres.NewUsersRepository(dbpool)
	productsRepository := postgres.NewProductsRepository(dbpool)
	authorizer := application.NewAuthorizer(usersRepository, productsRepository)

	accountCase := application.NewAccountCase(
		authorizer,
		usersRepository,
		productsRepository,
		domain.NewArgon2idHasher(nil),
		jwt.NewJWTTokenIssuer(),
		tokenRevoker,
		txManager,
		cfg.JwtSecret,
		cfg.JwtTTL,
	)
	depositCase := application.NewDepositCase(authorizer, usersRepository)
	productsCase := application.NewProductsCase(authorizer, usersRepository, productsRepository, txManager)
	purchaseCase := application.NewPurchaseCase(authorizer, usersRepository, productsRepository, txManager)

	gin.SetMode(gin.ReleaseMode)
	router := httpwrap.NewRouter(httpwrap.RouterDeps{
		Accounts:     accountCase,
		Deposits:     depositCase,
		Products:     productsCase,
		Purchases:    purchaseCase,
		TokenParser:  jwt.NewJWTTokenParser(),
		TokenRevoker: tokenRevoker,
		SecretKey:    cfg.JwtSecret,
		Cookie: httpwrap.CookieSettings{
			Secure: cfg.CookieSecure,
			MaxAge: cfg.JwtTTL,
		},
		Logger: logger,
	})

	a.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.healthServer = grpcwrap.NewHealthServer()
	a.grpcServer = grpcwrap.NewGRPCServer(a.healthServer, logger)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", "address", httpLis.Addr().String())

		if err := a.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while serving http: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		logger.Info("starting gRPC server", "address", grpcLis.Addr().String())

		if err := a.grpcServer.Serve(grpcLis); err != nil {
			return fmt.Errorf("failed to serve gRPC: %w", err)
		}

		return nil
	})

	grpcwrap.SetServing(a.healthServer, true)

	<-groupCtx.Done()
	a.Shutdown()

	return group.Wait()
}

func (a *VendingApp) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.healthServer != nil {
			grpcwrap.SetServing(a.healthServer, false)
		}

		if a.httpServer != nil {
			a.logger.Info("shutting down http server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("http server shutdown failed", "error", err.Error())
			}
		}

		if a.grpcServer != nil {
			a.logger.Info("shutting down gRPC server")
			a.grpcServer.GracefulStop()
		}

		if a.dbpool != nil {
			a.dbpool.Close()
		}

		if a.redisClient != nil {
			if err := a.redisClient.Close(); err != nil {
				a.logger.Warn("failed to close redis client", "error", err.Error())
			}
		}

		a.logger.Info("vending app stopped")
	})
}

func (a *VendingApp) createTokenRevoker(ctx context.Context) (domain.TokenRevoker, error) {
	if a.cfg.RedisAddr == "" {
		a.logger.Warn("redis address is not configured, logged out tokens stay valid until they expire")
		return redisstore.NopTokenRevoker{}, nil
	}

	client, err := redisstore.NewClient(ctx, a.cfg.RedisAddr, a.cfg.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.redisClient = client

	return redisstore.NewTokenRevoker(client), nil
}
