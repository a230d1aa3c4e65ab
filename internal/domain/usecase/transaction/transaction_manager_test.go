package transaction

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestNewTransactionManager(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)

	t.Run("Valid initialization", func(t *testing.T) {
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			return &entity.Transaction{}, nil
		}

		tm := NewTransactionManager(mockLogger, 0, processor)

		assert.NotNil(t, tm)
		assert.Equal(t, DefaultQueueSize, tm.queueSize)
		assert.Equal(t, 0, tm.ActiveQueues())
	})

	t.Run("Nil processor function should panic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTransactionManager(mockLogger, 10, nil)
		})
	})
}

func TestTransactionManager_EnqueueTransaction(t *testing.T) {
	t.Run("Successful transaction processing", func(t *testing.T) {
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			return &entity.Transaction{ID: 9, UserID: userID, Type: entity.TransactionType(req.TxType), Amount: req.Amount}, nil
		}

		tm := NewTransactionManager(quietLogger(t), 10, processor)
		defer tm.Shutdown()

		tx, err := tm.EnqueueTransaction(context.Background(), 123, PostingRequest{TxType: "Deposit", Amount: 10})

		require.NoError(t, err)
		assert.Equal(t, uint64(9), tx.ID)
		assert.Equal(t, uint64(123), tx.UserID)
		assert.Equal(t, 1, tm.ActiveQueues())
	})

	t.Run("Error in transaction processing", func(t *testing.T) {
		expectedErr := errs.NewInsufficientBalanceError(123, 10, 5)
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			return nil, expectedErr
		}

		tm := NewTransactionManager(quietLogger(t), 10, processor)
		defer tm.Shutdown()

		tx, err := tm.EnqueueTransaction(context.Background(), 123, PostingRequest{TxType: "Debit", Amount: 10})

		assert.Equal(t, expectedErr, err)
		assert.Nil(t, tx)
	})

	t.Run("Postings for one user never overlap", func(t *testing.T) {
		var running, maxRunning int32
		var mu sync.Mutex
		var order []int64

		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			now := atomic.AddInt32(&running, 1)
			for {
				prev := atomic.LoadInt32(&maxRunning)
				if now <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, now) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			mu.Lock()
			order = append(order, req.Amount)
			mu.Unlock()
			atomic.AddInt32(&running, -1)
			return &entity.Transaction{UserID: userID, Amount: req.Amount}, nil
		}

		tm := NewTransactionManager(quietLogger(t), 5, processor)
		defer tm.Shutdown()

		var wg sync.WaitGroup
		for i := 1; i <= 20; i++ {
			wg.Add(1)
			go func(amount int64) {
				defer wg.Done()
				_, err := tm.EnqueueTransaction(context.Background(), 7, PostingRequest{TxType: "Deposit", Amount: amount})
				assert.NoError(t, err)
			}(int64(i))
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
		assert.Len(t, order, 20)
	})

	t.Run("Different users get separate workers", func(t *testing.T) {
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			return &entity.Transaction{UserID: userID}, nil
		}

		tm := NewTransactionManager(quietLogger(t), 5, processor)
		defer tm.Shutdown()

		for userID := uint64(1); userID <= 3; userID++ {
			tx, err := tm.EnqueueTransaction(context.Background(), userID, PostingRequest{TxType: "Deposit", Amount: 1})
			require.NoError(t, err)
			assert.Equal(t, userID, tx.UserID)
		}
		assert.Equal(t, 3, tm.ActiveQueues())
	})

	t.Run("Context cancellation while waiting", func(t *testing.T) {
		release := make(chan struct{})
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			<-release
			return &entity.Transaction{}, nil
		}

		tm := NewTransactionManager(quietLogger(t), 5, processor)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		tx, err := tm.EnqueueTransaction(ctx, 1, PostingRequest{TxType: "Deposit", Amount: 1})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, tx)

		close(release)
		tm.Shutdown()
	})

	t.Run("Already canceled posting is skipped by the worker", func(t *testing.T) {
		var calls int32
		processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
			atomic.AddInt32(&calls, 1)
			return &entity.Transaction{}, nil
		}

		tm := NewTransactionManager(quietLogger(t), 5, processor)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tm.EnqueueTransaction(ctx, 1, PostingRequest{TxType: "Deposit", Amount: 1})
		assert.ErrorIs(t, err, context.Canceled)

		tm.Shutdown()
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})
}

func TestTransactionManager_Shutdown(t *testing.T) {
	processor := func(ctx context.Context, userID uint64, req PostingRequest) (*entity.Transaction, error) {
		time.Sleep(5 * time.Millisecond)
		return &entity.Transaction{}, nil
	}

	tm := NewTransactionManager(quietLogger(t), 5, processor)

	_, err := tm.EnqueueTransaction(context.Background(), 1, PostingRequest{TxType: "Deposit", Amount: 1})
	require.NoError(t, err)

	tm.Shutdown()

	_, err = tm.EnqueueTransaction(context.Background(), 1, PostingRequest{TxType: "Deposit", Amount: 1})
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	// Second shutdown is a no-op
	tm.Shutdown()
}
