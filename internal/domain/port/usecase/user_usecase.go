package usecase

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// SeedUser describes an account created at startup when absent
type SeedUser struct {
	Email string
	Pin   string
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser registers a new account with a zero balance
	CreateUser(ctx context.Context, email, pin string) (*entity.UserView, error)

	// GetUser returns the public record of the user with the given ID
	GetUser(ctx context.Context, userID uint64) (*entity.UserView, error)

	// Authenticate loads the user by email and verifies the PIN
	Authenticate(ctx context.Context, email, pin string) (*entity.User, error)

	// GetBalance returns the balance of the authenticated user
	GetBalance(ctx context.Context, email, pin string) (*entity.BalanceResponse, error)

	// CreateSeedUsers creates the given accounts, skipping those already registered
	CreateSeedUsers(ctx context.Context, users []SeedUser) error
}
