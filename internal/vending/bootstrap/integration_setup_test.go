package bootstrap_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/bootstrap"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	dbName     = "vending_db"
	dbUser     = "admin"
	dbPassword = "password"
	jwtSecret  = "integration-secret"
)

type apiClient struct {
	t       *testing.T
	baseURL string
	http    *http.Client
}

type authResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Deposit  uint32 `json:"deposit"`
}

type productResponse struct {
	ID              int    `json:"id"`
	ProductName     string `json:"productName"`
	Cost            uint32 `json:"cost"`
	AmountAvailable uint32 `json:"amountAvailable"`
	SellerID        int    `json:"sellerId"`
}

type purchaseResponse struct {
	ProductName     string            `json:"productName"`
	AmountPurchased uint32            `json:"amountPurchased"`
	TotalSpent      uint32            `json:"totalSpent"`
	Change          map[uint32]uint32 `json:"change"`
}

type balanceResponse struct {
	Deposit uint32 `json:"deposit"`
}

// startVendingApp runs postgres in a container and the whole app on
// loopback listeners. It returns a client bound to the HTTP address.
func startVendingApp(t *testing.T) *apiClient {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return db.PingContext(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	cfg := bootstrap.DefaultConfig()
	cfg.DbSettings = database.PostgresSettings{
		User:     dbUser,
		Password: dbPassword,
		Host:     dbHost,
		Port:     dbPort.Port(),
		DBName:   dbName,
	}
	cfg.JwtSecret = jwtSecret

	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := bootstrap.NewVendingApp(cfg, logging.StdoutLogger)

	appCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(appCtx, httpLis, grpcLis)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	client := &apiClient{
		t:       t,
		baseURL: "http://" + httpLis.Addr().String(),
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	require.Eventually(t, func() bool {
		resp, err := client.http.Get(client.baseURL + "/api/products")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	conn, err := grpc.NewClient(grpcLis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	health, err := healthpb.NewHealthClient(conn).Check(t.Context(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	return client
}

// do sends a JSON request and decodes the response into out when out is not
// nil. It returns the status code.
func (c *apiClient) do(method, path, token string, body, out any) int {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(c.t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(c.t, json.Unmarshal(respBody, out))
	}

	return resp.StatusCode
}

// registerAndLogin creates an account and returns it with a fresh token.
func (c *apiClient) registerAndLogin(username, role string) (userResponse, string) {
	c.t.Helper()

	var user userResponse
	status := c.do(http.MethodPost, "/api/users", "", map[string]string{
		"username": username,
		"password": "password123",
		"role":     role,
	}, &user)
	require.Equal(c.t, http.StatusCreated, status)

	var auth authResponse
	status = c.do(http.MethodPost, "/api/users/auth", "", map[string]string{
		"username": username,
		"password": "password123",
	}, &auth)
	require.Equal(c.t, http.StatusOK, status)
	require.NotEmpty(c.t, auth.Token)

	return user, auth.Token
}
