package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (sqlite file)")
		}
	case "postgres", "mysql":
		required := map[string]string{
			"database.host (or LEDGER_DB_HOST)":         cfg.Database.Host,
			"database.port (or LEDGER_DB_PORT)":         cfg.Database.Port,
			"database.username (or LEDGER_DB_USERNAME)": cfg.Database.Username,
			"database.password (or LEDGER_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or LEDGER_DB_NAME)":     cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	default:
		return fmt.Errorf("invalid database.driver: %q, must be one of: postgres, mysql, sqlite", cfg.Database.Driver)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Transaction.QueueSize == 0 {
		missingConfigs = append(missingConfigs, "transaction.queueSize")
	}
	if cfg.Transaction.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "transaction.maxRetries")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid server.mode: %q", cfg.Server.Mode)
	}

	for i, seed := range cfg.Seed.Users {
		if strings.TrimSpace(seed.Email) == "" || seed.Pin == "" {
			return fmt.Errorf("seed.users[%d] needs both email and pin", i)
		}
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		if cfg.Database.Driver == "sqlite" {
			return fmt.Errorf("sqlite is not supported in production; set database.driver")
		}
		if cfg.Server.ReadTimeout < 5*time.Second || cfg.Server.WriteTimeout < 5*time.Second {
			return fmt.Errorf("server read and write timeouts must be at least 5s in production")
		}
	}

	return nil
}
