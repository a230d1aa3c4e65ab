package dto

import "github.com/amirhossein-jamali/account-ledger/internal/domain/entity"

// TransactionRequest represents the API request for posting a transaction.
// Amount and tx_type are only checked for presence here; their values are
// validated after the PIN.
type TransactionRequest struct {
	Email  string `json:"email" form:"email" binding:"required"`
	Pin    string `json:"pin" form:"pin" binding:"required"`
	Amount *int64 `json:"amount" form:"amount" binding:"required"`
	TxType string `json:"tx_type" form:"tx_type" binding:"required"`
}

// TransactionResponse represents a posted transaction
type TransactionResponse struct {
	ID     uint64 `json:"id"`
	TxType string `json:"tx_type"`
	Amount int64  `json:"amount"`
	TxDate string `json:"tx_date"`
	UserID uint64 `json:"user_id"`
}

// TransactionListResponse wraps a user's ledger
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionResponse copies the allow-listed fields of a transaction view
func NewTransactionResponse(v *entity.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:     v.ID,
		TxType: string(v.TxType),
		Amount: v.Amount,
		TxDate: v.TxDate,
		UserID: v.UserID,
	}
}

// NewTransactionListResponse converts views in order; an empty ledger yields an empty array
func NewTransactionListResponse(views []entity.TransactionView) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(views))
	for i := range views {
		out = append(out, NewTransactionResponse(&views[i]))
	}
	return TransactionListResponse{Transactions: out}
}
