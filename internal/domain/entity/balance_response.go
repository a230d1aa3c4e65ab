package entity

// UserView is the public record of a user. The PIN hash is never part of it.
type UserView struct {
	ID             uint64 `json:"id"`
	Email          string `json:"email"`
	CurrentBalance int64  `json:"current_balance"`
}

// BalanceResponse represents the response for the balance endpoint
type BalanceResponse struct {
	CurrentBalance int64 `json:"current_balance"`
}

// TransactionView is the public record of a transaction
type TransactionView struct {
	ID     uint64          `json:"id"`
	TxType TransactionType `json:"tx_type"`
	Amount int64           `json:"amount"`
	TxDate string          `json:"tx_date"`
	UserID uint64          `json:"user_id"`
}

// UserToView converts a User entity to its public record
func UserToView(user *User) UserView {
	return UserView{
		ID:             user.ID,
		Email:          user.Email,
		CurrentBalance: user.Balance(),
	}
}

// UserToBalanceResponse converts a User entity to a BalanceResponse
func UserToBalanceResponse(user *User) BalanceResponse {
	return BalanceResponse{
		CurrentBalance: user.Balance(),
	}
}

// TransactionToView converts a Transaction entity to its public record
func TransactionToView(tx *Transaction) TransactionView {
	return TransactionView{
		ID:     tx.ID,
		TxType: tx.Type,
		Amount: tx.Amount,
		TxDate: tx.FormattedDate(),
		UserID: tx.UserID,
	}
}
