package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Cart  CartConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TASTEBITE_APP_ENV" required:"true"`
	Port         string `envconfig:"TASTEBITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TASTEBITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TASTEBITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TASTEBITE_DB_DSN" default:"tastebite.db"`
	Driver string `envconfig:"TASTEBITE_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"TASTEBITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TASTEBITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TASTEBITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TASTEBITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"TASTEBITE_AUTO_MIGRATE" default:"false"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func (db DBConfig) validate() error {
	switch strings.ToLower(db.Driver) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvDBDriver, DriverSQLite, DriverPostgres, db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

// IsSQLite reports whether the configured driver is sqlite.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"TASTEBITE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TASTEBITE_REDIS_ADDR"`
	Password     string        `envconfig:"TASTEBITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"TASTEBITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TASTEBITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TASTEBITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TASTEBITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TASTEBITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TASTEBITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"TASTEBITE_CART_SNAPSHOT_TTL" default:"72h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"TASTEBITE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
