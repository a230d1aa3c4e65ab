package entity

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  a@x.com ", "hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "hash", user.PinHash)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid email", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			strings.Repeat("a", 101),
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser(tc, "hash", mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidEmail)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Missing hash", func(t *testing.T) {
		user, err := NewUser("a@x.com", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidPin)
		assert.Nil(t, user)
	})
}

func TestRestoreUser(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	user := RestoreUser(7, "a@x.com", "hash", 250, created, updated)

	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, int64(250), user.Balance())
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, updated, user.UpdatedAt)
}

func TestUserSetBalance(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Once()

	user, _ := NewUser("a@x.com", "hash", mockTime)

	mockTime.EXPECT().Now().Return(updateTime).Once()
	user.SetBalance(200, mockTime)

	assert.Equal(t, int64(200), user.Balance())
	assert.Equal(t, initialTime, user.CreatedAt)
	assert.Equal(t, updateTime, user.UpdatedAt)
}

func TestUserCanDebit(t *testing.T) {
	user := RestoreUser(1, "a@x.com", "hash", 100, time.Time{}, time.Time{})

	testCases := []struct {
		name     string
		amount   int64
		expected bool
	}{
		{"Below balance", 50, true},
		{"One below balance", 99, true},
		{"Exact balance", 100, false},
		{"Above balance", 150, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, user.CanDebit(tc.amount))
		})
	}
}

func TestApplyDeposit(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	t.Run("Adds to balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(initialTime).Once()
		user, _ := NewUser("a@x.com", "hash", mockTime)

		mockTime.EXPECT().Now().Return(updateTime).Once()
		err := user.ApplyDeposit(100, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(100), user.Balance())
		assert.Equal(t, updateTime, user.UpdatedAt)
	})

	t.Run("Rejects non-positive amounts", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		user := RestoreUser(1, "a@x.com", "hash", 10, initialTime, initialTime)

		assert.ErrorIs(t, user.ApplyDeposit(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, user.ApplyDeposit(-5, mockTime), errs.ErrInvalidAmount)
		assert.Equal(t, int64(10), user.Balance())
	})

	t.Run("Rejects overflow", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		user := RestoreUser(1, "a@x.com", "hash", math.MaxInt64-1, initialTime, initialTime)

		err := user.ApplyDeposit(2, mockTime)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64-1), user.Balance())
	})
}

func TestApplyDebit(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	t.Run("Valid deduction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(updateTime).Once()
		user := RestoreUser(1, "a@x.com", "hash", 100, initialTime, initialTime)

		err := user.ApplyDebit(40, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(60), user.Balance())
		assert.Equal(t, updateTime, user.UpdatedAt)
	})

	t.Run("Equal amount is insufficient", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		user := RestoreUser(1, "a@x.com", "hash", 60, initialTime, initialTime)

		err := user.ApplyDebit(60, mockTime)

		require.Error(t, err)
		assert.True(t, errs.IsInsufficientBalanceError(err))

		var ibe *errs.InsufficientBalanceError
		require.True(t, errors.As(err, &ibe))
		assert.Equal(t, int64(60), ibe.CurrBalance)
		assert.Equal(t, int64(60), ibe.Amount)

		assert.Equal(t, int64(60), user.Balance())
		assert.Equal(t, initialTime, user.UpdatedAt)
	})

	t.Run("Larger amount is insufficient", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		user := RestoreUser(1, "a@x.com", "hash", 60, initialTime, initialTime)

		err := user.ApplyDebit(61, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(60), user.Balance())
	})
}

func TestUserApply(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user := RestoreUser(1, "a@x.com", "hash", 0, fixedTime, fixedTime)

	require.NoError(t, user.Apply(&Transaction{UserID: 1, Type: TypeDeposit, Amount: 100}, mockTime))
	require.NoError(t, user.Apply(&Transaction{UserID: 1, Type: TypeDebit, Amount: 40}, mockTime))
	assert.Equal(t, int64(60), user.Balance())

	err := user.Apply(&Transaction{UserID: 1, Type: "Refund", Amount: 5}, mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	assert.Equal(t, int64(60), user.Balance())
}
