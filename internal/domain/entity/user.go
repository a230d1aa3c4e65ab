package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// User represents an account holder with a whole-unit balance
type User struct {
	ID        uint64    // Unique identifier assigned by the store
	Email     string    // Unique login identifier
	PinHash   string    // Salted PIN hash, never exposed outward
	balance   int64     // Current balance in whole units (private)
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a new user with a zero balance
func NewUser(email, pinHash string, timeProvider coreport.TimeProvider) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if pinHash == "" {
		return nil, errs.ErrInvalidPin
	}

	now := timeProvider.Now()
	return &User{
		Email:     normalized,
		PinHash:   pinHash,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a persisted user, including its balance
func RestoreUser(id uint64, email, pinHash string, balance int64, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:        id,
		Email:     email,
		PinHash:   pinHash,
		balance:   balance,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the current balance
func (u *User) Balance() int64 {
	return u.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	u.balance = balance
	u.UpdatedAt = timeProvider.Now()
}

// CanDebit reports whether a debit of amount is allowed.
// The balance must stay strictly above the amount.
func (u *User) CanDebit(amount int64) bool {
	return u.balance > amount
}

// ApplyDeposit adds the amount to the balance
func (u *User) ApplyDeposit(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	newBalance, err := AddAmount(u.balance, amount)
	if err != nil {
		return err
	}

	u.balance = newBalance
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyDebit subtracts the amount from the balance.
// Returns InsufficientBalanceError unless balance > amount.
func (u *User) ApplyDebit(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !u.CanDebit(amount) {
		return errs.NewInsufficientBalanceError(u.ID, amount, u.balance)
	}

	u.balance -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Apply posts the transaction against this user's balance
func (u *User) Apply(tx *Transaction, timeProvider coreport.TimeProvider) error {
	switch tx.Type {
	case TypeDeposit:
		return u.ApplyDeposit(tx.Amount, timeProvider)
	case TypeDebit:
		return u.ApplyDebit(tx.Amount, timeProvider)
	default:
		return errs.ErrInvalidTransactionType
	}
}
