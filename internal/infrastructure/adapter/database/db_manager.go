package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
)

// poolMonitorInterval is how often connection pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	classifier   *repository.ErrorClassifier
	poolMonitor  *PoolMonitor
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		classifier:   repository.NewErrorClassifier(),
		timeProvider: timeProvider,
	}
}

// dialector returns the GORM dialector for the configured driver
func (m *Manager) dialector() (gorm.Dialector, error) {
	dsn := m.config.DSN()
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect opens the database, retrying transient failures, and configures the pool
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		retry.RetryInterval = m.config.RetryDelay
		retry.MaxInterval = 8 * m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err = RetryOnTransientError(ctx, retry, func() error {
		db, openErr := gorm.Open(dialector, &gorm.Config{
			Logger:         NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogQueries),
			NowFunc:        func() time.Time { return m.timeProvider.Now() },
			TranslateError: true,
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
			_ = sqlDB.Close()
			return pingErr
		}

		gormDB = db
		return nil
	}, m.classifier, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		// sqlite has no row locks; a single connection serializes writers
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": sqlDB.Stats().MaxOpenConnections,
		"query_timeout":  m.config.QueryTimeout.String(),
		"lock_timeout":   m.config.LockTimeout.String(),
	})

	m.db = gormDB
	m.poolMonitor = NewPoolMonitor(sqlDB, m.logger, m.timeProvider)
	m.poolMonitor.Start(poolMonitorInterval)

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured driver name
func (m *Manager) Driver() string {
	return m.config.Driver
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// PoolStatus samples the connection pool now
func (m *Manager) PoolStatus() PoolStatus {
	if m.poolMonitor == nil {
		return PoolStatus{}
	}
	return m.poolMonitor.Sample()
}

// Saturated reports whether postings are queueing for a connection
func (m *Manager) Saturated() bool {
	return m.PoolStatus().Saturated
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.poolMonitor != nil {
		m.poolMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.config.Driver, m.config.LockTimeout, m.logger, m.timeProvider)
}

// ErrorClassifier returns the classifier used to interpret driver errors
func (m *Manager) ErrorClassifier() *repository.ErrorClassifier {
	return m.classifier
}
