package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

type Config struct {
	DatabaseURL       string        `envconfig:"DATABASE_URL"         required:"true"`
	DBDriver          string        `envconfig:"DB_DRIVER"            default:"postgres"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS"    default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS"    default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBSlowThreshold   time.Duration `envconfig:"DB_SLOW_THRESHOLD"    default:"200ms"`

	HTTPPort        string        `envconfig:"HTTP_PORT"        default:":8080"`
	GrpcPort        string        `envconfig:"GRPC_PORT"        default:":50051"` // read-only catalog + health
	GinMode         string        `envconfig:"GIN_MODE"         default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`

	SeedEnabled bool          `envconfig:"SEED_ENABLED" default:"true"`
	SeedURL     string        `envconfig:"SEED_URL"     default:"https://fakestoreapi.com/products"`
	SeedTimeout time.Duration `envconfig:"SEED_TIMEOUT" default:"15s"`

	PasswordMode string `envconfig:"PASSWORD_MODE" default:"plain"`
}

var (
	config Config
	once   sync.Once
)

// Load reads the process environment into a fresh Config and validates it.
// It does not touch .env files; LoadConfig does that once per process.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.PasswordMode = strings.ToLower(strings.TrimSpace(cfg.PasswordMode))

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}
	switch cfg.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return nil, fmt.Errorf("unsupported PASSWORD_MODE %q (want %q or %q)", cfg.PasswordMode, PasswordModePlain, PasswordModeBcrypt)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.SeedEnabled && cfg.SeedURL == "" {
		return nil, fmt.Errorf("SEED_URL must be set when SEED_ENABLED is true")
	}
	return &cfg, nil
}

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Configuration error: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: %s", config.String())
	})
	return &config
}

// String returns a loggable summary; the connection string is never included.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s (url set: %t), HTTP: %s, gRPC: %s, LogLevel: %s, Seed: %t, PasswordMode: %s}",
		c.DBDriver, c.DatabaseURL != "", c.HTTPPort, c.GrpcPort, c.LogLevel, c.SeedEnabled, c.PasswordMode)
}
