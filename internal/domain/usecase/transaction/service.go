package transaction

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// Options tunes sequencing and lock retries
type Options struct {
	QueueSize    int
	MaxAttempts  int
	RetryBackoff time.Duration
}

// Service is the ledger service. It authenticates the owner, validates the
// request and hands the posting to the user's sequential queue.
type Service struct {
	users     usecase.UserUseCase
	uow       persistence.UnitOfWork
	manager   *TransactionManager
	processor *TransactionProcessor
	validator *TransactionValidator
	logger    coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	users usecase.UserUseCase,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	processor := NewTransactionProcessor(uow, timeProvider, logger, opts.MaxAttempts, opts.RetryBackoff)
	manager := NewTransactionManager(logger, opts.QueueSize, processor.Process)

	return &Service{
		users:     users,
		uow:       uow,
		manager:   manager,
		processor: processor,
		validator: NewTransactionValidator(),
		logger:    logger,
	}
}

// PostTransaction applies a Deposit or Debit for the authenticated user.
// A wrong PIN is reported before any validation of type or amount.
func (s *Service) PostTransaction(ctx context.Context, req usecase.TransactionRequest) (*entity.TransactionView, error) {
	user, err := s.users.Authenticate(ctx, req.Email, req.Pin)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateTransaction(req.TxType, req.Amount); err != nil {
		s.logger.Debug("Transaction request rejected", map[string]any{
			"user_id": user.ID,
			"tx_type": req.TxType,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	tx, err := s.manager.EnqueueTransaction(ctx, user.ID, PostingRequest{
		TxType: req.TxType,
		Amount: req.Amount,
	})
	if err != nil {
		return nil, err
	}

	view := entity.TransactionToView(tx)
	return &view, nil
}

// ListTransactions returns the authenticated user's transactions in posting order
func (s *Service) ListTransactions(ctx context.Context, email, pin string) ([]entity.TransactionView, error) {
	user, err := s.users.Authenticate(ctx, email, pin)
	if err != nil {
		return nil, err
	}

	txs, err := s.uow.GetTransactionRepository(ctx).ListByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	views := make([]entity.TransactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, entity.TransactionToView(tx))
	}
	return views, nil
}

// GetManager returns the underlying transaction manager
func (s *Service) GetManager() *TransactionManager {
	return s.manager
}

// Shutdown drains the per-user queues
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}
