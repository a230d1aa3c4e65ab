package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// SeedUsers creates the configured accounts that do not exist yet
func SeedUsers(ctx context.Context, users usecase.UserUseCase, seeds []usecase.SeedUser, logger coreport.Logger) error {
	if len(seeds) == 0 {
		return nil
	}

	if err := users.CreateSeedUsers(ctx, seeds); err != nil {
		logger.Error("Failed to seed users", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Seed users ready", map[string]any{
		"count": len(seeds),
	})
	return nil
}
