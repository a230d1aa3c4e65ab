package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance    = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeInvalidTransactionType = 4004
	CodeConstraintViolation    = 4005
	CodeAmountOverflow         = 4006
	CodeInvalidRequest         = 4007
	CodeInvalidEmail           = 4008
	CodeInvalidPin             = 4009
	CodePinIncorrect           = 4010
	CodeUserNotFound           = 4040
	CodeUserAlreadyExists      = 4090
	CodeUserLocked             = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a debit is not strictly below the current balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the transaction amount is not a positive integer
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrAmountOverflow is returned when a deposit would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned for a tx_type other than Deposit or Debit
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidEmail is returned when the email is empty or too long
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPin is returned when the PIN is empty or too long to hash
	ErrInvalidPin = errors.New("invalid pin")

	// ErrPinIncorrect is returned when the supplied PIN does not match the stored hash
	ErrPinIncorrect = errors.New("pin incorrect")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email is already registered
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserLocked is returned when the account row stays locked past the retry budget
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidPin):
		return CodeInvalidPin
	case errors.Is(err, ErrPinIncorrect):
		return CodePinIncorrect
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return CodeUserAlreadyExists
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// TransactionError represents an error related to transaction processing
type TransactionError struct {
	UserID uint64
	TxType string
	Amount int64
	Reason string
	Err    error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error for user %d (%s %d): %s - %v",
		e.UserID, e.TxType, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transaction_error",
		"user_id":    e.UserID,
		"tx_type":    e.TxType,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(userID uint64, txType string, amount int64, reason string, err error) error {
	return &TransactionError{
		UserID: userID,
		TxType: txType,
		Amount: amount,
		Reason: reason,
		Err:    err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required more than %d, available %d",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsAuthError reports whether the error came from email lookup or PIN verification
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrPinIncorrect)
}

// IsValidationError reports whether the error is caused by malformed client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidPin) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}
