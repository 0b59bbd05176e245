// Package transaction contains ledger-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionCategory,
			"category must not be empty",
			domainerror.ErrEmptyTransactionCategory,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}

	transaction := entity.NewTransaction(
		input.Date,
		input.Description,
		input.Amount,
		input.Type,
		input.Category,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
