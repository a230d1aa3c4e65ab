package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by exact email match
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and locks its row until the surrounding
	// unit of work commits or rolls back
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrUserLocked: If the row lock could not be acquired
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create inserts a new user and assigns its ID.
	// Email uniqueness is enforced by the store.
	//
	// Possible errors:
	// - ErrUserAlreadyExists: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance persists the user's current balance
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalance(ctx context.Context, user *entity.User) error
}
