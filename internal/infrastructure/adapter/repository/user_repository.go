package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(
		userModel.ID,
		userModel.Email,
		userModel.PinHash,
		userModel.Balance,
		userModel.CreatedAt,
		userModel.UpdatedAt,
	)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.ToDomainError(err, errs.ErrUserNotFound)

	switch {
	case errs.IsUserNotFoundError(mapped):
		r.logger.Debug("User not found", fields)
	case errs.IsUserLockedError(mapped):
		r.logger.Warn("User row is locked by another transaction", withError(fields, err))
	case mapped == errs.ErrUserAlreadyExists:
		r.logger.Debug("Duplicate user email", fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), withError(fields, err))
	}

	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{"user_id": id})
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, map[string]any{"email": email})
	}

	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user with an exclusive row lock.
// The lock is held by the surrounding database transaction; sqlite has no
// row locks and relies on its single-writer connection instead.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, map[string]any{"user_id": id})
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id": id,
		"balance": userModel.Balance,
	})

	return r.modelToEntity(&userModel), nil
}

// Create inserts a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:     user.Email,
		PinHash:   user.PinHash,
		Balance:   user.Balance(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, map[string]any{"email": user.Email})
	}

	user.ID = userModel.ID
	r.logger.Debug("User row inserted", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// UpdateBalance persists the user's current balance
func (r *UserRepository) UpdateBalance(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance":    user.Balance(),
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, map[string]any{"user_id": user.ID})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during balance update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// withError copies fields and adds the error message
func withError(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
