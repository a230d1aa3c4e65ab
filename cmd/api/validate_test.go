package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Database:     "ledger.db",
			QueryTimeout: 5 * time.Second,
		},
		Logger:      config.LoggerConfig{Level: "info"},
		Transaction: config.TransactionConfig{QueueSize: 100, MaxRetries: 3},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"missing port", func(c *config.Config) { c.Server.Port = 0 }},
		{"unknown driver", func(c *config.Config) { c.Database.Driver = "oracle" }},
		{"postgres without host", func(c *config.Config) { c.Database.Driver = "postgres" }},
		{"bad environment", func(c *config.Config) { c.Environment = "staging" }},
		{"bad gin mode", func(c *config.Config) { c.Server.Mode = "loud" }},
		{"seed without pin", func(c *config.Config) {
			c.Seed.Users = []config.SeedUserConfig{{Email: "a@x.com"}}
		}},
		{"sqlite in production", func(c *config.Config) { c.Environment = config.Production }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
