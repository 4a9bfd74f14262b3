package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Environment string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	LogQueries      bool
}

type LedgerConfig struct {
	HomeCurrency   string
	InitialReserve decimal.Decimal
	TxRetries      int
	TxRetryWait    time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// LoadDotEnv reads a .env file into the process environment when one exists.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: failed to load %s: %v", path, err)
		}
	}
}

func Load() *Config {
	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "ledger.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			LogQueries:      getBoolEnv("DB_LOG_QUERIES", false),
		},
		Ledger: LedgerConfig{
			HomeCurrency:   strings.ToUpper(getEnv("LEDGER_HOME_CURRENCY", "ILS")),
			InitialReserve: getDecimalEnv("LEDGER_INITIAL_RESERVE", decimal.NewFromInt(10000000)),
			TxRetries:      getIntEnv("LEDGER_TX_RETRIES", 5),
			TxRetryWait:    getDurationEnv("LEDGER_TX_RETRY_WAIT", 20*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Metrics: MetricsConfig{
			Enabled:   getBoolEnv("METRICS_ENABLED", false),
			Namespace: getEnv("METRICS_NAMESPACE", "ledger"),
		},
	}

	if config.Database.Driver == DriverSQLite && config.Database.MaxConnections > 1 {
		// SQLite allows a single writer; extra connections only produce SQLITE_BUSY.
		config.Database.MaxConnections = 1
		config.Database.MaxIdleConns = 1
	}

	return config
}

// Validate reports configuration values the ledger cannot run with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if len(c.Ledger.HomeCurrency) != 3 {
		return fmt.Errorf("LEDGER_HOME_CURRENCY must be a three letter code, got %q", c.Ledger.HomeCurrency)
	}

	if c.Ledger.InitialReserve.IsNegative() {
		return fmt.Errorf("LEDGER_INITIAL_RESERVE cannot be negative")
	}

	if c.Ledger.TxRetries < 0 {
		return fmt.Errorf("LEDGER_TX_RETRIES cannot be negative")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
		log.Printf("Warning: %s=%q is not a decimal, using %s", key, value, defaultValue.String())
	}
	return defaultValue
}
