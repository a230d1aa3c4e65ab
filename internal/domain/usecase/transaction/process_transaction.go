package transaction

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// Retry defaults for lock conflicts
const (
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 20 * time.Millisecond
	maxRetryBackoff     = time.Second
)

// TransactionProcessor applies a posting inside a unit of work
type TransactionProcessor struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxAttempts  int
	retryBackoff time.Duration
}

// NewTransactionProcessor creates a new TransactionProcessor
func NewTransactionProcessor(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxAttempts int,
	retryBackoff time.Duration,
) *TransactionProcessor {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if retryBackoff <= 0 {
		retryBackoff = DefaultRetryBackoff
	}

	return &TransactionProcessor{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		maxAttempts:  maxAttempts,
		retryBackoff: retryBackoff,
	}
}

// Process posts the transaction, retrying when the user's row is locked
// by a concurrent writer. Business errors are returned without retry.
func (p *TransactionProcessor) Process(
	ctx context.Context,
	userID uint64,
	req PostingRequest,
) (*entity.Transaction, error) {
	for attempt := 1; ; attempt++ {
		tx, err := p.postOnce(ctx, userID, req)
		if err == nil {
			return tx, nil
		}

		if !errs.IsUserLockedError(err) || attempt >= p.maxAttempts {
			return nil, err
		}

		backoff := p.backoff(attempt)
		p.logger.Warn("Account row busy, retrying transaction", map[string]any{
			"user_id":    userID,
			"attempt":    attempt,
			"backoff_ms": backoff.Milliseconds(),
			"error":      err.Error(),
		})

		if err := p.timeProvider.Sleep(ctx, coreport.Duration(backoff)); err != nil {
			return nil, err
		}
	}
}

// postOnce runs one read-modify-write cycle under a row lock
func (p *TransactionProcessor) postOnce(
	ctx context.Context,
	userID uint64,
	req PostingRequest,
) (*entity.Transaction, error) {
	var posted *entity.Transaction

	err := persistence.WithinTransaction(ctx, p.uow, func(txCtx context.Context) error {
		userRepo := p.uow.GetUserRepository(txCtx)
		txRepo := p.uow.GetTransactionRepository(txCtx)

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		tx, err := entity.NewTransaction(user.ID, req.TxType, req.Amount, p.timeProvider)
		if err != nil {
			return err
		}

		if err := user.Apply(tx, p.timeProvider); err != nil {
			return err
		}

		if err := txRepo.Create(txCtx, tx); err != nil {
			return errs.NewTransactionError(userID, req.TxType, req.Amount, "failed to record transaction", err)
		}

		if err := userRepo.UpdateBalance(txCtx, user); err != nil {
			return errs.NewTransactionError(userID, req.TxType, req.Amount, "failed to update balance", err)
		}

		posted = tx
		return nil
	})
	if err != nil {
		p.logFailure(userID, req, err)
		return nil, err
	}

	p.logger.Info("Transaction posted", map[string]any{
		"user_id":        userID,
		"transaction_id": posted.ID,
		"tx_type":        string(posted.Type),
		"amount":         posted.Amount,
	})

	return posted, nil
}

func (p *TransactionProcessor) logFailure(userID uint64, req PostingRequest, err error) {
	var ibe *errs.InsufficientBalanceError
	var txErr *errs.TransactionError

	switch {
	case errors.As(err, &ibe):
		p.logger.Info("Transaction rejected", ibe.LogFields())
	case errors.As(err, &txErr):
		p.logger.Error("Transaction failed", txErr.LogFields())
	case errs.IsUserLockedError(err):
		// retried or surfaced by Process
	default:
		p.logger.Error("Transaction failed", map[string]any{
			"user_id": userID,
			"tx_type": req.TxType,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
	}
}

// backoff returns an exponential delay with jitter for the given attempt
func (p *TransactionProcessor) backoff(attempt int) time.Duration {
	delay := p.retryBackoff << (attempt - 1)
	if delay <= 0 || delay > maxRetryBackoff {
		delay = maxRetryBackoff
	}

	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	return delay/2 + jitter
}
