package config

// EnvPrefix is the envconfig prefix shared by every TasteBite binary.
const EnvPrefix = "tastebite"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error text).
const (
	EnvAppEnv   = "TASTEBITE_APP_ENV"
	EnvPort     = "TASTEBITE_APP_PORT"
	EnvDBDSN    = "TASTEBITE_DB_DSN"
	EnvDBDriver = "TASTEBITE_DB_DRIVER"
	EnvRedisURL = "TASTEBITE_REDIS_URL"
)
