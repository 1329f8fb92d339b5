package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/aussiebroadwan/technotes/pkg/jwtx"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Env                  string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                 int           `yaml:"port"`                  // HTTP server port (default: 3500)
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"` // Housekeeping interval (default: 1m)

	StoreDriver   string `yaml:"store_driver"`   // sqlite or mongo (default: sqlite)
	DatabaseFile  string `yaml:"database_file"`  // SQLite database path (default: ./technotes.db)
	MongoURI      string `yaml:"mongo_uri"`      // Mongo connection string
	MongoDatabase string `yaml:"mongo_database"` // Mongo database name (default: technotes)

	JWTSecret      string        `yaml:"jwt_secret"`       // HS256 secret; generated per process when empty
	JWTIssuer      string        `yaml:"jwt_issuer"`       // iss claim (default: technotes)
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"` // Access token lifetime (default: 15m)
	AuthRequired   bool          `yaml:"auth_required"`    // Require bearer tokens on /notes and /users
	TrustProxy     bool          `yaml:"trust_proxy"`      // Key client limits on X-Forwarded-For/X-Real-IP (default: false)

	LoginLimitRequests int           `yaml:"login_limit_requests"` // Login attempts per window (default: 5)
	LoginLimitWindow   time.Duration `yaml:"login_limit_window"`   // Login window (default: 1m)
	EventLogFile       string        `yaml:"event_log_file"`       // Append-only rejection log (default: logs/errLog.log)
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 3500,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: time.Minute,

		StoreDriver:   DriverSQLite,
		DatabaseFile:  "technotes.db",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "technotes",

		JWTIssuer:      "technotes",
		AccessTokenTTL: jwtx.DefaultAccessTokenTTL,

		LoginLimitRequests: httpx.DefaultLoginLimit,
		LoginLimitWindow:   httpx.DefaultLoginWindow,
		EventLogFile:       "logs/errLog.log",
	}
}

// LoadConfig layers defaults, the YAML file at path (if any), a .env file in
// the working directory and finally the process environment. An empty path
// falls back to CONFIG_FILE.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)

	cfg.StoreDriver = strings.ToLower(getEnvOrDefault("STORE_DRIVER", cfg.StoreDriver))
	cfg.DatabaseFile = getEnvOrDefault("DATABASE_FILE", cfg.DatabaseFile)
	cfg.MongoURI = getEnvOrDefault("MONGO_URI", cfg.MongoURI)
	cfg.MongoDatabase = getEnvOrDefault("MONGO_DATABASE", cfg.MongoDatabase)

	cfg.JWTSecret = getEnvOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnvOrDefault("JWT_ISSUER", cfg.JWTIssuer)
	cfg.AccessTokenTTL = getEnvDurationOrDefault("ACCESS_TOKEN_TTL", cfg.AccessTokenTTL)
	cfg.AuthRequired = getEnvBoolOrDefault("AUTH_REQUIRED", cfg.AuthRequired)
	cfg.TrustProxy = getEnvBoolOrDefault("TRUST_PROXY", cfg.TrustProxy)

	cfg.LoginLimitRequests = getEnvIntOrDefault("LOGIN_LIMIT_REQUESTS", cfg.LoginLimitRequests)
	cfg.LoginLimitWindow = getEnvDurationOrDefault("LOGIN_LIMIT_WINDOW", cfg.LoginLimitWindow)
	cfg.EventLogFile = getEnvOrDefault("EVENT_LOG_FILE", cfg.EventLogFile)

	return cfg, cfg.Validate()
}

// Validate rejects configurations the application cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.LoginLimitRequests <= 0 || c.LoginLimitWindow <= 0 {
		return errors.New("login limit must be positive")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLen)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
