package entity

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

const (
	// MaxEmailLength matches the width of the email column
	MaxEmailLength = 100

	// MaxPinBytes is the longest PIN bcrypt can hash without truncation
	MaxPinBytes = 72
)

// ValidateAmount checks that a transaction amount is a positive whole number
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// AddAmount adds two non-negative amounts, failing instead of overflowing
func AddAmount(balance, amount int64) (int64, error) {
	if amount > math.MaxInt64-balance {
		return 0, errs.ErrAmountOverflow
	}
	return balance + amount, nil
}

// NormalizeEmail trims the email and checks its length
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidEmail)
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return "", fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidEmail, MaxEmailLength)
	}
	return email, nil
}

// ValidatePin checks that a PIN can be hashed
func ValidatePin(pin string) error {
	if pin == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidPin)
	}
	if len(pin) > MaxPinBytes {
		return fmt.Errorf("%w: longer than %d bytes", errs.ErrInvalidPin, MaxPinBytes)
	}
	return nil
}
