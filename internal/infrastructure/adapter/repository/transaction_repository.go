package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID: transaction.UserID,
		TxType: string(transaction.Type),
		Amount: transaction.Amount,
		TxDate: transaction.Date,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:     m.ID,
		UserID: m.UserID,
		Type:   entity.TransactionType(m.TxType),
		Amount: m.Amount,
		Date:   m.TxDate,
	}
}

// Create saves a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit("User").Create(&transactionModel)
	if result.Error != nil {
		fields := map[string]any{
			"user_id": transaction.UserID,
			"tx_type": transaction.Type,
			"amount":  transaction.Amount,
			"error":   result.Error.Error(),
		}
		if r.errorClassifier.IsConstraintError(result.Error) {
			// The only foreign key is the owning user
			r.logger.Warn("Transaction references a missing user", fields)
			return errs.ErrUserNotFound
		}
		r.logger.Error("Failed to create transaction", fields)
		return r.errorClassifier.ToDomainError(result.Error, errs.ErrUserNotFound)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction row inserted", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// ListByUserID returns the user's transactions in posting order
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(result.Error, errs.ErrUserNotFound)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, nil
}
