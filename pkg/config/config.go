package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"STORE_APP_ENV" default:"dev"`
	Port     string `envconfig:"STORE_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"STORE_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"STORE_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"STORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"STORE_DB_AUTO_MIGRATE" default:"false"`
}

type JWTConfig struct {
	Secret          string `envconfig:"STORE_JWT_SECRET" required:"true"`
	Issuer          string `envconfig:"STORE_JWT_ISSUER" default:"kirtlelatino-store"`
	ExpirationHours int    `envconfig:"STORE_JWT_EXPIRATION_HOURS" default:"24"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationHours <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STORE_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigin string `envconfig:"STORE_CORS_ALLOWED_ORIGIN" default:"http://localhost:3000"`
}
