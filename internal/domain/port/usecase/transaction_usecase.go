package usecase

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// TransactionRequest represents an incoming transaction request
type TransactionRequest struct {
	Email  string
	Pin    string
	Amount int64
	TxType string
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// PostTransaction authenticates the owner and applies a Deposit or Debit
	PostTransaction(ctx context.Context, req TransactionRequest) (*entity.TransactionView, error)

	// ListTransactions returns the authenticated user's transactions in posting order
	ListTransactions(ctx context.Context, email, pin string) ([]entity.TransactionView, error)
}
