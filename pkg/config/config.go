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
	App         AppConfig
	Upstream    UpstreamConfig
	Session     SessionConfig
	Redis       RedisConfig
	Google      GoogleConfig
	Maintenance MaintenanceConfig
	CORS        CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREFRONT_UPSTREAM_TIMEOUT" default:"10s"`
}

type SessionConfig struct {
	CookieName        string        `envconfig:"STOREFRONT_SESSION_COOKIE_NAME" default:"jwt"`
	CookieDomain      string        `envconfig:"STOREFRONT_SESSION_COOKIE_DOMAIN"`
	CookieSecure      bool          `envconfig:"STOREFRONT_SESSION_COOKIE_SECURE" default:"true"`
	RefreshThreshold  time.Duration `envconfig:"STOREFRONT_SESSION_REFRESH_THRESHOLD" default:"2m"`
	HeartbeatInterval time.Duration `envconfig:"STOREFRONT_SESSION_HEARTBEAT_INTERVAL" default:"10s"`
}

func (s SessionConfig) validate() error {
	if s.RefreshThreshold <= 0 {
		return fmt.Errorf("session refresh threshold must be positive")
	}
	if s.HeartbeatInterval <= 0 {
		return fmt.Errorf("session heartbeat interval must be positive")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type GoogleConfig struct {
	ClientID string `envconfig:"STOREFRONT_GOOGLE_CLIENT_ID"`
}

type MaintenanceConfig struct {
	CacheTTL time.Duration `envconfig:"STOREFRONT_MAINTENANCE_CACHE_TTL" default:"30s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}
