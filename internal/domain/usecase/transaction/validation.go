package transaction

import (
	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// TransactionValidator provides validation for transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateTransaction checks the type before the amount, so an unknown type
// is reported even when the amount is also wrong
func (v *TransactionValidator) ValidateTransaction(txType string, amount int64) error {
	if _, err := entity.ParseTransactionType(txType); err != nil {
		return err
	}

	return entity.ValidateAmount(amount)
}
