package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// CreateUser registers a new account with a zero balance.
// Duplicate emails are detected by the store's unique index, not by a prior lookup.
func (u *UserUseCase) CreateUser(ctx context.Context, email, pin string) (*entity.UserView, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidatePin(pin); err != nil {
		return nil, err
	}

	pinHash, err := u.pinHasher.Hash(pin)
	if err != nil {
		u.logger.Error("Failed to hash PIN", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(normalized, pinHash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrUserAlreadyExists) {
			u.logger.Info("User already exists", map[string]any{
				"email": normalized,
			})
		} else {
			u.logger.Error("Failed to create user", map[string]any{
				"email": normalized,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	view := entity.UserToView(user)
	return &view, nil
}

// CreateSeedUsers creates the configured accounts, skipping emails already registered
func (u *UserUseCase) CreateSeedUsers(ctx context.Context, users []usecase.SeedUser) error {
	for _, seed := range users {
		_, err := u.CreateUser(ctx, seed.Email, seed.Pin)
		if err == nil {
			continue
		}
		if errors.Is(err, errs.ErrUserAlreadyExists) {
			continue
		}
		return err
	}

	u.logger.Info("Seed users created or verified", map[string]any{
		"count": len(users),
	})
	return nil
}
