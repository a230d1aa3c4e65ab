package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/account-ledger/mocks/port/persistence"
)

func TestUserUseCase_GetBalance(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return balance for valid credentials", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		user := entity.RestoreUser(123, "a@x.com", "hash", 60, fixedTime, fixedTime)

		mockUserRepo := new(persistence.MockUserRepository)
		mockHasher := new(core.MockPinHasher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByEmail", ctx, "a@x.com").Return(user, nil)
		mockHasher.On("Verify", "hash", "1234").Return(true)
		mockLogger.On("Debug", "User balance retrieved", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockHasher, mockTimeProvider, mockLogger)

		// Act
		response, err := useCase.GetBalance(ctx, "a@x.com", "1234")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, &entity.BalanceResponse{CurrentBalance: 60}, response)

		mockUserRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return pin incorrect for wrong pin", func(t *testing.T) {
		ctx := context.Background()
		user := entity.RestoreUser(123, "a@x.com", "hash", 60, fixedTime, fixedTime)

		mockUserRepo := new(persistence.MockUserRepository)
		mockHasher := new(core.MockPinHasher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByEmail", ctx, "a@x.com").Return(user, nil)
		mockHasher.On("Verify", "hash", "0000").Return(false)
		mockLogger.On("Warn", "Incorrect PIN", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockHasher, mockTimeProvider, mockLogger)

		response, err := useCase.GetBalance(ctx, "a@x.com", "0000")

		assert.ErrorIs(t, err, errs.ErrPinIncorrect)
		assert.Nil(t, response)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should return not found for unknown email", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(persistence.MockUserRepository)
		mockHasher := new(core.MockPinHasher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByEmail", ctx, "z@x.com").Return(nil, errs.ErrUserNotFound)
		mockLogger.On("Debug", mock.Anything, mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockHasher, mockTimeProvider, mockLogger)

		response, err := useCase.GetBalance(ctx, "z@x.com", "1234")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, response)
		mockHasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})
}
