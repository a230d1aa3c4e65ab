package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: 9090
  readTimeout: 5
database:
  driver: postgres
  host: db.internal
  port: "5432"
  database: ledger
  queryTimeout: 3
  lockTimeout: 500
logger:
  level: debug
transaction:
  queueSize: 16
  retryBackoff: 50
seed:
  users:
    - email: a@x.com
      pin: "1234"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("Reads the environment file and converts durations", func(t *testing.T) {
		t.Setenv("LEDGER_ENV", "test")
		dir := writeConfig(t, Test, testConfigYAML)

		cfg, err := LoadConfigFrom([]string{dir})

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 500*time.Millisecond, cfg.Database.LockTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, 16, cfg.Transaction.QueueSize)
		assert.Equal(t, 50*time.Millisecond, cfg.Transaction.RetryBackoff)
		assert.Equal(t, 10, cfg.Security.PinHashCost)
		require.Len(t, cfg.Seed.Users, 1)
		assert.Equal(t, SeedUserConfig{Email: "a@x.com", Pin: "1234"}, cfg.Seed.Users[0])
	})

	t.Run("Environment variables override the file", func(t *testing.T) {
		t.Setenv("LEDGER_ENV", "test")
		t.Setenv("LEDGER_DB_HOST", "override.internal")
		t.Setenv("LEDGER_SERVER_PORT", "7070")
		t.Setenv("LEDGER_DATABASE_DRIVER", "mysql")
		t.Setenv("LEDGER_TRANSACTION_MAX_RETRIES", "0")
		dir := writeConfig(t, Test, testConfigYAML)

		cfg, err := LoadConfigFrom([]string{dir})

		require.NoError(t, err)
		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 0, cfg.Transaction.MaxRetries)
	})

	t.Run("Malformed integer override is ignored", func(t *testing.T) {
		t.Setenv("LEDGER_ENV", "test")
		t.Setenv("LEDGER_DB_MAX_OPEN_CONNS", "many")
		dir := writeConfig(t, Test, testConfigYAML)

		cfg, err := LoadConfigFrom([]string{dir})

		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Setenv("LEDGER_ENV", "production")

		cfg, err := LoadConfigFrom([]string{t.TempDir()})

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Defaults to development", func(t *testing.T) {
		t.Setenv("LEDGER_ENV", "")
		dir := writeConfig(t, Development, "server:\n  port: 8081\n")

		cfg, err := LoadConfigFrom([]string{dir})

		require.NoError(t, err)
		assert.Equal(t, Development, cfg.Environment)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	})
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Run("Loads the first existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("LEDGER_DOTENV_PROBE=loaded\n"), 0o600))
		t.Setenv("LEDGER_DOTENV_PROBE", "")
		require.NoError(t, os.Unsetenv("LEDGER_DOTENV_PROBE"))

		err := loadDotEnvFile([]string{filepath.Join(dir, "missing.env"), path})

		require.NoError(t, err)
		assert.Equal(t, "loaded", os.Getenv("LEDGER_DOTENV_PROBE"))
	})

	t.Run("No file found", func(t *testing.T) {
		err := loadDotEnvFile([]string{filepath.Join(t.TempDir(), ".env")})
		assert.ErrorIs(t, err, ErrNoDotEnv)
	})
}
