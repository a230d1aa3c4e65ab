package user

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// GetBalance authenticates the user and returns only the current balance
func (u *UserUseCase) GetBalance(ctx context.Context, email, pin string) (*entity.BalanceResponse, error) {
	user, err := u.Authenticate(ctx, email, pin)
	if err != nil {
		return nil, err
	}

	response := entity.UserToBalanceResponse(user)

	u.logger.Debug("User balance retrieved", map[string]any{
		"userId":  user.ID,
		"balance": response.CurrentBalance,
	})

	return &response, nil
}
