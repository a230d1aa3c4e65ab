package transaction

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// DefaultQueueSize is the per-user queue capacity used when none is configured
const DefaultQueueSize = 100

// PostingRequest is a validated balance change waiting for its user's worker
type PostingRequest struct {
	TxType string
	Amount int64
}

// PostingFunc applies one posting for a user
type PostingFunc func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error)

// TransactionManager provides sequential processing of transactions per user
type TransactionManager struct {
	logger    coreport.Logger
	queueSize int

	// User-based transaction queues for strict ordering
	mu             sync.RWMutex
	closed         bool
	userQueues     map[uint64]chan *queuedPosting
	queueWaitGroup sync.WaitGroup

	processor PostingFunc
}

// queuedPosting represents a queued transaction request
type queuedPosting struct {
	ctx        context.Context
	userID     uint64
	req        PostingRequest
	resultChan chan postingResult
}

// postingResult represents the result of a processed transaction
type postingResult struct {
	tx  *entity.Transaction
	err error
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(logger coreport.Logger, queueSize int, processor PostingFunc) *TransactionManager {
	if processor == nil {
		panic("Transaction processor function cannot be nil")
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &TransactionManager{
		logger:     logger,
		queueSize:  queueSize,
		userQueues: make(map[uint64]chan *queuedPosting),
		processor:  processor,
	}
}

// EnqueueTransaction hands a posting to the user's worker and waits for its result.
// Postings for one user run one at a time, in arrival order.
func (m *TransactionManager) EnqueueTransaction(
	ctx context.Context,
	userID uint64,
	req PostingRequest,
) (*entity.Transaction, error) {
	queue, err := m.acquireQueue(userID)
	if err != nil {
		return nil, err
	}

	posting := &queuedPosting{
		ctx:        ctx,
		userID:     userID,
		req:        req,
		resultChan: make(chan postingResult, 1),
	}

	select {
	case queue <- posting:
		m.mu.RUnlock()
		m.logger.Debug("Transaction enqueued", map[string]any{
			"user_id": userID,
			"tx_type": req.TxType,
			"amount":  req.Amount,
		})
	case <-ctx.Done():
		m.mu.RUnlock()
		m.logger.Warn("Context canceled while enqueueing transaction", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-posting.resultChan:
		return result.tx, result.err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for transaction result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// acquireQueue returns the user's queue, starting its worker on first use.
// On success the read lock is held and the caller must release it.
func (m *TransactionManager) acquireQueue(userID uint64) (chan *queuedPosting, error) {
	m.mu.RLock()
	for {
		if m.closed {
			m.mu.RUnlock()
			return nil, fmt.Errorf("%w: transaction manager is shut down", errs.ErrInternalServer)
		}
		if queue, ok := m.userQueues[userID]; ok {
			return queue, nil
		}
		m.mu.RUnlock()

		m.mu.Lock()
		if _, ok := m.userQueues[userID]; !ok && !m.closed {
			queue := make(chan *queuedPosting, m.queueSize)
			m.userQueues[userID] = queue

			m.logger.Debug("Starting transaction queue worker", map[string]any{
				"user_id": userID,
			})
			m.queueWaitGroup.Add(1)
			go m.processUserTransactions(userID, queue)
		}
		m.mu.Unlock()

		m.mu.RLock()
	}
}

// processUserTransactions handles the worker goroutine for a user's transaction queue
func (m *TransactionManager) processUserTransactions(userID uint64, queue chan *queuedPosting) {
	defer m.queueWaitGroup.Done()

	for posting := range queue {
		if err := posting.ctx.Err(); err != nil {
			posting.resultChan <- postingResult{err: err}
			continue
		}

		tx, err := m.processor(posting.ctx, userID, posting.req)
		posting.resultChan <- postingResult{tx: tx, err: err}
	}

	m.logger.Debug("Transaction queue worker stopped", map[string]any{
		"user_id": userID,
	})
}

// ActiveQueues returns the number of users with a running worker
func (m *TransactionManager) ActiveQueues() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.userQueues)
}

// Shutdown stops accepting postings, drains queued ones and waits for workers to exit
func (m *TransactionManager) Shutdown() {
	m.logger.Info("Shutting down transaction manager", nil)

	m.mu.Lock()
	if !m.closed {
		m.closed = true
		for _, queue := range m.userQueues {
			close(queue)
		}
	}
	m.mu.Unlock()

	m.queueWaitGroup.Wait()
	m.logger.Info("Transaction manager shut down successfully", nil)
}
