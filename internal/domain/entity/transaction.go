package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	tport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// TransactionType represents the direction of a transaction
type TransactionType string

// Transaction types
const (
	TypeDeposit TransactionType = "Deposit"
	TypeDebit   TransactionType = "Debit"
)

// DateLayout is the calendar-date format used for tx_date
const DateLayout = "2006-01-02"

// Transaction represents a posted change to a user's balance
type Transaction struct {
	ID     uint64          // Unique identifier assigned by the store
	UserID uint64          // Owner of the transaction
	Type   TransactionType // Deposit or Debit
	Amount int64           // Strictly positive whole units
	Date   time.Time       // Captured when the transaction is constructed
}

// ParseTransactionType validates a case-sensitive transaction type
func ParseTransactionType(txType string) (TransactionType, error) {
	switch TransactionType(txType) {
	case TypeDeposit, TypeDebit:
		return TransactionType(txType), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, txType)
	}
}

// NewTransaction creates a new transaction with basic validation
func NewTransaction(
	userID uint64,
	txType string,
	amount int64,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	parsedType, err := ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID: userID,
		Type:   parsedType,
		Amount: amount,
		Date:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction should increase the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeDeposit
}

// IsDebit returns true if this transaction should decrease the user's balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// FormattedDate returns the transaction date as YYYY-MM-DD
func (t *Transaction) FormattedDate() string {
	return t.Date.Format(DateLayout)
}
