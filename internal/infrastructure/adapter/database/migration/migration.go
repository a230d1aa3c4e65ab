package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change
type step struct {
	version string
	details string
	run     func(ctx context.Context) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	driver       string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *IndexManager
}

// NewMigrationManager creates a new migration manager for the given driver
func NewMigrationManager(db *gorm.DB, driver string, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		driver:       driver,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewIndexManager(db, driver, logger),
	}
}

// steps lists schema changes in application order
func (m *MigrationManager) steps() []step {
	return []step{
		{version: "1.0.0", details: "Create users and transactions", run: m.autoMigrateModels},
		{version: "1.1.0", details: "Transaction history index", run: m.indexMgr.CreateIndexes},
	}
}

// MigrateAll applies every step newer than the recorded schema version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"driver":         m.driver,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.steps() {
		if currentVersion != "" && s.version <= currentVersion {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})
		if err := s.run(ctx); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			return fmt.Errorf("record migration %s: %w", s.version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Transaction{},
	)
}
