package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// historyIndex serves per-user transaction listing in posting order
const historyIndex = "idx_transactions_user_id_id"

// IndexManager manages indexes and driver-specific table settings
type IndexManager struct {
	db     *gorm.DB
	driver string
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, driver string, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		driver: driver,
		logger: logger,
	}
}

// CreateIndexes creates the transaction history index and applies postgres tweaks
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if !db.Migrator().HasIndex(&model.Transaction{}, historyIndex) {
		if err := db.Exec("CREATE INDEX " + historyIndex + " ON transactions (user_id, id)").Error; err != nil {
			m.logger.Error("Failed to create transaction history index", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	if m.driver == "postgres" {
		m.applyPostgresTweaks(db)
	}

	return nil
}

// applyPostgresTweaks tunes the hot users table; failures are logged only
func (m *IndexManager) applyPostgresTweaks(db *gorm.DB) {
	// Balance updates rewrite the row; spare page room keeps them HOT updates
	if err := db.Exec("ALTER TABLE users SET (fillfactor = 90)").Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec("ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000").Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
