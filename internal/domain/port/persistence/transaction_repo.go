package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrConstraintViolation: If transaction data violates a store constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUserID returns the user's transactions in posting order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUserID(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
