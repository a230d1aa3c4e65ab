package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "LEDGER"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// ErrNoDotEnv is returned when none of the .env search paths exists
var ErrNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(DotEnvPaths); err != nil && !errors.Is(err, ErrNoDotEnv) {
		return nil, err
	}
	return LoadConfigFrom(ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies
// LEDGER_-prefixed environment overrides
func LoadConfigFrom(paths []string) (*Config, error) {
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in paths
func loadDotEnvFile(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return ErrNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("timeZone", "UTC")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.database", "ledger.db")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.lockTimeout", 2000)   // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.queueSize", 100)
	v.SetDefault("transaction.maxRetries", 3)
	v.SetDefault("transaction.retryBackoff", 20) // milliseconds

	v.SetDefault("security.pinHashCost", 10)
}

// getEnvironment determines the environment to use based on LEDGER_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the conventional short variable names onto config keys.
// AutomaticEnv already covers the long form, e.g. LEDGER_DATABASE_HOST.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"LEDGER_DB_DRIVER":    "database.driver",
		"LEDGER_DB_HOST":      "database.host",
		"LEDGER_DB_PORT":      "database.port",
		"LEDGER_DB_USERNAME":  "database.username",
		"LEDGER_DB_PASSWORD":  "database.password",
		"LEDGER_DB_NAME":      "database.database",
		"LEDGER_DB_SSL_MODE":  "database.sslMode",
		"LEDGER_SERVER_HOST":  "server.host",
		"LEDGER_LOGGER_LEVEL": "logger.level",
	}
	for name, key := range stringOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"LEDGER_SERVER_PORT":                  "server.port",
		"LEDGER_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"LEDGER_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"LEDGER_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
		"LEDGER_DB_LOCK_TIMEOUT_MS":           "database.lockTimeout",
		"LEDGER_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
		"LEDGER_TRANSACTION_QUEUE_SIZE":       "transaction.queueSize",
		"LEDGER_TRANSACTION_MAX_RETRIES":      "transaction.maxRetries",
		"LEDGER_TRANSACTION_RETRY_BACKOFF_MS": "transaction.retryBackoff",
		"LEDGER_SECURITY_PIN_HASH_COST":       "security.pinHashCost",
	}
	for name, key := range intOverrides {
		if value, ok := getEnvInt(name); ok && value >= 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable; ok is false when unset or malformed
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.LockTimeout = time.Duration(config.Database.LockTimeout) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Transaction.RetryBackoff = time.Duration(config.Transaction.RetryBackoff) * time.Millisecond
}
