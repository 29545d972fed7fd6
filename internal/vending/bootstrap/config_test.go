package bootstrap

import (
	"testing"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(env.EnvHttpPort, ":8181")
	t.Setenv(env.EnvDatabaseHost, "db")
	t.Setenv(env.EnvDatabaseSSL, "true")
	t.Setenv(env.EnvDatabaseLockTimeout, "500ms")
	t.Setenv(env.EnvDatabaseTxAttempts, "5")
	t.Setenv(env.EnvJwtSecret, "top-secret")
	t.Setenv(env.EnvJwtTTL, "1h")
	t.Setenv(env.EnvRedisAddr, "redis:6379")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, ":8181", cfg.HttpPort)
	assert.Equal(t, ":9090", cfg.GrpcPort)
	assert.Equal(t, "db", cfg.DbSettings.Host)
	assert.True(t, cfg.DbSettings.SSlEnabled)
	assert.NotContains(t, cfg.DbSettings.GetURL(), "sslmode=disable")
	assert.Equal(t, 500*time.Millisecond, cfg.LockTimeout)
	assert.Equal(t, 5, cfg.TxMaxAttempts)
	assert.Equal(t, "top-secret", cfg.JwtSecret)
	assert.Equal(t, time.Hour, cfg.JwtTTL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv_SSLDisabled(t *testing.T) {
	t.Setenv(env.EnvDatabaseHost, "db")
	t.Setenv(env.EnvDatabasePort, "5432")
	t.Setenv(env.EnvDatabaseUser, "postgres")
	t.Setenv(env.EnvDatabasePassword, "postgres")
	t.Setenv(env.EnvDatabaseName, "vending")
	t.Setenv(env.EnvDatabaseSSL, "false")

	cfg := LoadConfigFromEnv()

	assert.False(t, cfg.DbSettings.SSlEnabled)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/vending?sslmode=disable", cfg.DbSettings.GetURL())
}

func TestVendingConfig_Validate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		modifyFn  func(cfg *VendingConfig)
		expectErr bool
	}

	tests := []testCase{
		{
			name:     "valid",
			modifyFn: func(cfg *VendingConfig) {},
		},
		{
			name:      "missing secret",
			modifyFn:  func(cfg *VendingConfig) { cfg.JwtSecret = "" },
			expectErr: true,
		},
		{
			name:      "non-positive ttl",
			modifyFn:  func(cfg *VendingConfig) { cfg.JwtTTL = 0 },
			expectErr: true,
		},
		{
			name:      "no transaction attempts",
			modifyFn:  func(cfg *VendingConfig) { cfg.TxMaxAttempts = 0 },
			expectErr: true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.JwtSecret = "secret"
			tt.modifyFn(&cfg)

			err := cfg.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
