package dto

import "github.com/amirhossein-jamali/account-ledger/internal/domain/entity"

// CreateUserRequest represents the API request for registering a user.
// Accepted as JSON or form data.
type CreateUserRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
	Pin   string `json:"pin" form:"pin" binding:"required"`
}

// CredentialsQuery carries email and PIN in the query string
type CredentialsQuery struct {
	Email string `form:"email" binding:"required"`
	Pin   string `form:"pin" binding:"required"`
}

// UserIDQuery selects a user by id in the query string
type UserIDQuery struct {
	UserID string `form:"user_id" binding:"required"`
}

// UserResponse is the public user record; the PIN hash is never included
type UserResponse struct {
	ID             uint64 `json:"id"`
	Email          string `json:"email"`
	CurrentBalance int64  `json:"current_balance"`
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	CurrentBalance int64 `json:"current_balance"`
}

// NewUserResponse copies the allow-listed fields of a user view
func NewUserResponse(v *entity.UserView) UserResponse {
	return UserResponse{
		ID:             v.ID,
		Email:          v.Email,
		CurrentBalance: v.CurrentBalance,
	}
}

// NewBalanceResponse copies the balance of a balance view
func NewBalanceResponse(v *entity.BalanceResponse) BalanceResponse {
	return BalanceResponse{CurrentBalance: v.CurrentBalance}
}
