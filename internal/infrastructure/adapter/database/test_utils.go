package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// The database is closed when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        DriverSQLite,
		Database:      "file:ledger_" + uuid.NewString() + "?mode=memory&cache=shared",
		QueryTimeout:  5 * time.Second,
		LockTimeout:   5 * time.Second,
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	migrator := migration.NewMigrationManager(manager.DB(), config.Driver, logger, timeProvider)
	if err := migrator.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying GORM handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestUser inserts a user row directly and returns its ID
func (m *TestDBManager) CreateTestUser(t *testing.T, email, pinHash string, balance int64) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		Email:     email,
		PinHash:   pinHash,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// Balance reads a user's stored balance
func (m *TestDBManager) Balance(t *testing.T, userID uint64) int64 {
	t.Helper()

	var user model.User
	if err := m.DB().First(&user, userID).Error; err != nil {
		t.Fatalf("Failed to read test user: %v", err)
	}
	return user.Balance
}

// CountTransactions returns the number of transaction rows for a user
func (m *TestDBManager) CountTransactions(t *testing.T, userID uint64) int64 {
	t.Helper()

	var count int64
	if err := m.DB().Model(&model.Transaction{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}
	return count
}
