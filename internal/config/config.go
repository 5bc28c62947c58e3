package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	AuthModeDemo = "demo"

	devJWTSecret = "dev-only-secret-change-me"
)

type Config struct {
	AppEnv string

	HTTPAddr      string
	PublicBaseURL string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Session storage
	StorageDriver string
	StorageFile   string
	RedisURL      string
	DatabaseURL   string
	SessionKey    string

	// Demo auth
	AuthMode     string
	DemoEmail    string
	DemoPassword string
	DemoUserID   string
	DemoUserName string
	AuthDelay    time.Duration

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Rate Limiting (login/register only)
	RLEnabled    bool
	RLAuthLimit  int
	RLAuthWindow time.Duration

	SeedFile string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5173"), "/")

	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "discovery-service")
	cfg.TokenTTL = getDuration("TOKEN_TTL", 12*time.Hour)

	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile))
	cfg.StorageFile = getEnv("STORAGE_FILE", "data/local_storage.json")
	cfg.RedisURL = getEnv("REDIS_URL", "redis://localhost:6379/0")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.SessionKey = getEnv("SESSION_KEY", "auth")

	cfg.AuthMode = strings.ToLower(getEnv("AUTH_MODE", AuthModeDemo))
	cfg.DemoEmail = getEnv("DEMO_EMAIL", "organizer@example.com")
	cfg.DemoPassword = getEnv("DEMO_PASSWORD", "password")
	cfg.DemoUserID = getEnv("DEMO_USER_ID", "org1")
	cfg.DemoUserName = getEnv("DEMO_USER_NAME", "Jazztown Music Association")
	cfg.AuthDelay = getDuration("AUTH_DELAY", time.Second)

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "discovery.events")

	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLAuthLimit = getIntEnv("RL_AUTH_LIMIT", 10)
	cfg.RLAuthWindow = getDuration("RL_AUTH_WINDOW", time.Minute)

	cfg.SeedFile = getEnv("SEED_FILE", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		if !c.IsDev() {
			return fmt.Errorf("missing JWT_SECRET (required when APP_ENV != dev)")
		}
		c.JWTSecret = devJWTSecret
	}

	switch c.StorageDriver {
	case StorageMemory, StorageRedis:
	case StorageFile:
		if c.StorageFile == "" {
			return fmt.Errorf("missing STORAGE_FILE for file storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("missing DATABASE_URL for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.AuthMode != AuthModeDemo {
		return fmt.Errorf("unsupported AUTH_MODE %q", c.AuthMode)
	}
	if c.DemoEmail == "" || c.DemoPassword == "" || c.DemoUserID == "" {
		return fmt.Errorf("demo auth requires DEMO_EMAIL, DEMO_PASSWORD and DEMO_USER_ID")
	}

	if c.AuthDelay < 0 {
		c.AuthDelay = 0
	}
	if c.RLAuthLimit <= 0 {
		c.RLAuthLimit = 10
	}
	return nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
