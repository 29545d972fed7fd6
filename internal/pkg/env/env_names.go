package env

const (
	EnvHttpPort = "HTTP_PORT"
	EnvGrpcPort = "GRPC_PORT"

	EnvDatabaseHost        = "DB_HOST"
	EnvDatabasePort        = "DB_PORT"
	EnvDatabaseUser        = "DB_USER"
	EnvDatabasePassword    = "DB_PASSWORD"
	EnvDatabaseName        = "DB_NAME"
	EnvDatabaseSSL         = "DB_SSL"
	EnvDatabaseLockTimeout = "DB_LOCK_TIMEOUT"
	EnvDatabaseTxAttempts  = "DB_TX_MAX_ATTEMPTS"

	EnvJwtSecret = "JWT_SECRET"
	EnvJwtTTL    = "JWT_TTL"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"

	EnvCookieSecure = "COOKIE_SECURE"
)
