package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	pinHasher    coreport.PinHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	pinHasher coreport.PinHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		pinHasher:    pinHasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser returns the public record of the user with the given ID
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.UserView, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	view := entity.UserToView(user)
	return &view, nil
}

// Authenticate loads the user by email and verifies the PIN.
// It never mutates state.
func (u *UserUseCase) Authenticate(ctx context.Context, email, pin string) (*entity.User, error) {
	email = strings.TrimSpace(email)

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Debug("Authentication for unknown email", map[string]any{
				"email": email,
			})
		} else {
			u.logger.Error("Failed to look up user by email", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	if !u.pinHasher.Verify(user.PinHash, pin) {
		u.logger.Warn("Incorrect PIN", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.ErrPinIncorrect
	}

	return user, nil
}
