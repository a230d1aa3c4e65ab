package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToView(t *testing.T) {
	user := RestoreUser(42, "a@x.com", "$2a$10$secret", 60, time.Now(), time.Now())

	view := UserToView(user)

	assert.Equal(t, uint64(42), view.ID)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, int64(60), view.CurrentBalance)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "pin")
}

func TestUserToBalanceResponse(t *testing.T) {
	user := RestoreUser(42, "a@x.com", "hash", 0, time.Now(), time.Now())

	response := UserToBalanceResponse(user)

	assert.Equal(t, int64(0), response.CurrentBalance)
}

func TestTransactionToView(t *testing.T) {
	tx := &Transaction{
		ID:     3,
		UserID: 42,
		Type:   TypeDebit,
		Amount: 40,
		Date:   time.Date(2024, 5, 6, 18, 30, 0, 0, time.UTC),
	}

	view := TransactionToView(tx)

	assert.Equal(t, TransactionView{ID: 3, TxType: TypeDebit, Amount: 40, TxDate: "2024-05-06", UserID: 42}, view)
}
