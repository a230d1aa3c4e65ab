package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

func TestNewConfig_DefaultsToSQLite(t *testing.T) {
	cfg, err := NewConfig(appconfig.DatabaseConfig{Database: "ledger.db", LockTimeout: 2 * time.Second})
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "ledger.db?_foreign_keys=on&_busy_timeout=2000", cfg.DSN())
}

func TestNewConfig_InvalidPort(t *testing.T) {
	_, err := NewConfig(appconfig.DatabaseConfig{Driver: DriverPostgres, Port: "abc"})
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	base := Config{
		Host:     "db",
		Port:     5432,
		Username: "ledger",
		Password: "secret",
		Database: "ledger",
		SSLMode:  "disable",
	}

	pg := base
	pg.Driver = DriverPostgres
	assert.Equal(t, "host=db port=5432 user=ledger password=secret dbname=ledger sslmode=disable", pg.DSN())
	assert.NoError(t, pg.Validate())

	my := base
	my.Driver = DriverMySQL
	my.Port = 3306
	assert.Equal(t, "ledger:secret@tcp(db:3306)/ledger?charset=utf8mb4&parseTime=True&loc=UTC", my.DSN())
	assert.NoError(t, my.Validate())

	mem := Config{Driver: DriverSQLite, Database: "file:x?mode=memory", LockTimeout: time.Second}
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on&_busy_timeout=1000", mem.DSN())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown driver", Config{Driver: "oracle"}},
		{"sqlite without path", Config{Driver: DriverSQLite}},
		{"postgres without host", Config{Driver: DriverPostgres, Port: 5432, Username: "u", Database: "d", SSLMode: "disable"}},
		{"postgres bad ssl", Config{Driver: DriverPostgres, Host: "h", Port: 5432, Username: "u", Database: "d", SSLMode: "sometimes"}},
		{"mysql bad port", Config{Driver: DriverMySQL, Host: "h", Port: 70000, Username: "u", Database: "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
