package bootstrap

import (
	"errors"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/env"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
)

type VendingConfig struct {
	DbSettings    database.PostgresSettings
	LockTimeout   time.Duration
	TxMaxAttempts int

	HttpPort string
	GrpcPort string

	JwtSecret    string
	JwtTTL       time.Duration
	CookieSecure bool

	RedisAddr     string
	RedisPassword string
}

func DefaultConfig() VendingConfig {
	return VendingConfig{
		DbSettings: database.PostgresSettings{
			User:       "postgres",
			Password:   "postgres",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "vending",
			SSlEnabled: false,
		},
		LockTimeout:   database.DefaultLockTimeout,
		TxMaxAttempts: database.DefaultMaxAttempts,
		HttpPort:      ":8080",
		GrpcPort:      ":9090",
		JwtTTL:        jwt.DefaultTokenTTL,
	}
}

// LoadConfigFromEnv starts from DefaultConfig and overrides every field whose
// variable is set.
func LoadConfigFromEnv() VendingConfig {
	cfg := DefaultConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvGrpcPort, &cfg.GrpcPort)

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled)
	env.TrySetDurationFromEnv(env.EnvDatabaseLockTimeout, &cfg.LockTimeout)
	env.TrySetIntFromEnv(env.EnvDatabaseTxAttempts, &cfg.TxMaxAttempts)

	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetDurationFromEnv(env.EnvJwtTTL, &cfg.JwtTTL)
	env.TrySetBoolFromEnv(env.EnvCookieSecure, &cfg.CookieSecure)

	env.TrySetFromEnv(env.EnvRedisAddr, &cfg.RedisAddr)
	env.TrySetFromEnv(env.EnvRedisPassword, &cfg.RedisPassword)

	return cfg
}

func (c VendingConfig) Validate() error {
	if c.JwtSecret == "" {
		return errors.New("jwt secret is not configured")
	}

	if c.JwtTTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}

	if c.TxMaxAttempts <= 0 {
		return errors.New("transaction attempts must be positive")
	}

	return nil
}
