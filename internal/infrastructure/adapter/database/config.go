package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	appconfig "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string // database name, or file path for sqlite
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LockTimeout     time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	LogQueries      bool
}

// NewConfig builds a database Config from the application configuration
func NewConfig(c appconfig.DatabaseConfig) (*Config, error) {
	port := 0
	if c.Port != "" {
		p, err := strconv.Atoi(c.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid database port %q: %w", c.Port, err)
		}
		port = p
	}

	cfg := &Config{
		Driver:          c.Driver,
		Host:            c.Host,
		Port:            port,
		Username:        c.Username,
		Password:        c.Password,
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		QueryTimeout:    c.QueryTimeout,
		LockTimeout:     c.LockTimeout,
		RetryAttempts:   c.RetryAttempts,
		RetryDelay:      c.RetryDelay,
		LogQueries:      c.LogQueries,
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
		return nil
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns < 0 {
		return fmt.Errorf("max open connections must be non-negative, got: %d", c.MaxOpenConns)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the driver-specific connection string
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	case DriverSQLite:
		// Foreign keys are off by default in sqlite; busy_timeout stands in for a lock timeout
		sep := "?"
		if strings.Contains(c.Database, "?") {
			sep = "&"
		}
		return fmt.Sprintf("%s%s_foreign_keys=on&_busy_timeout=%d", c.Database, sep, c.LockTimeout.Milliseconds())
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}
}
