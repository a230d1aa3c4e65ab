package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name          string
		txType        string
		amount        int64
		expectedError error
	}{
		{name: "Valid Deposit", txType: "Deposit", amount: 100},
		{name: "Valid Debit", txType: "Debit", amount: 1},
		{name: "Lowercase type", txType: "deposit", amount: 100, expectedError: domainerrs.ErrInvalidTransactionType},
		{name: "Unknown type", txType: "Transfer", amount: 100, expectedError: domainerrs.ErrInvalidTransactionType},
		{name: "Empty type", txType: "", amount: 100, expectedError: domainerrs.ErrInvalidTransactionType},
		{name: "Zero amount", txType: "Deposit", amount: 0, expectedError: domainerrs.ErrInvalidAmount},
		{name: "Negative amount", txType: "Debit", amount: -10, expectedError: domainerrs.ErrInvalidAmount},
		{name: "Type checked before amount", txType: "Refund", amount: -1, expectedError: domainerrs.ErrInvalidTransactionType},
	}

	validator := NewTransactionValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTransaction(tt.txType, tt.amount)

			if tt.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}
