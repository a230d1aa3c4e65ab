package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// PoolStatus is one sample of the connection pool.
// Every posting holds a connection for the whole locked read-modify-write,
// so a pool that keeps queueing callers means postings are waiting on each other.
type PoolStatus struct {
	OpenConnections    int
	InUse              int
	Idle               int
	MaxOpenConnections int
	WaitCount          int64
	WaitDuration       time.Duration
	Saturated          bool
	SampledAt          time.Time
}

// statsSource is satisfied by *sql.DB
type statsSource interface {
	Stats() sql.DBStats
}

// PoolMonitor samples pool statistics and tracks saturation transitions
type PoolMonitor struct {
	source       statsSource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu   sync.RWMutex
	last PoolStatus

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a monitor over the given pool
func NewPoolMonitor(source statsSource, logger coreport.Logger, timeProvider coreport.TimeProvider) *PoolMonitor {
	return &PoolMonitor{
		source:       source,
		logger:       logger,
		timeProvider: timeProvider,
		stopChan:     make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *PoolMonitor) Start(interval time.Duration) {
	m.Sample()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sample()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the sampling loop; safe to call more than once
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Status returns the last sample
func (m *PoolMonitor) Status() PoolStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// Sample reads the pool statistics now.
// The pool counts as saturated when every connection is in use and callers
// queued for one since the previous sample.
func (m *PoolMonitor) Sample() PoolStatus {
	stats := m.source.Stats()

	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.last
	current := PoolStatus{
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		SampledAt:          m.timeProvider.Now(),
	}
	current.Saturated = stats.MaxOpenConnections > 0 &&
		stats.InUse >= stats.MaxOpenConnections &&
		stats.WaitCount > prev.WaitCount

	switch {
	case current.Saturated && !prev.Saturated:
		m.logger.Warn("Database connection pool saturated, postings are queueing", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	case !current.Saturated && prev.Saturated:
		m.logger.Info("Database connection pool recovered", map[string]any{
			"in_use":   stats.InUse,
			"max_open": stats.MaxOpenConnections,
		})
	}

	m.last = current
	return current
}
