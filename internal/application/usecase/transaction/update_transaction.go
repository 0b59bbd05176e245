package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields keep their current values.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Category      *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				err,
			)
		}
		return nil, err
	}

	merged := *transaction
	if input.Date != nil {
		merged.Date = *input.Date
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Amount != nil {
		merged.Amount = *input.Amount
	}
	if input.Type != nil {
		merged.Type = *input.Type
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}

	if merged.Type != entity.TransactionTypeIncome && merged.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if merged.Category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionCategory,
			"category must not be empty",
			domainerror.ErrEmptyTransactionCategory,
		)
	}
	if merged.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}

	merged.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, &merged); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				err,
			)
		}
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: &merged,
	}, nil
}
