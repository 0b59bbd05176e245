package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of deleting a transaction.
type DeleteTransactionOutput struct{}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes the transaction from the ledger permanently.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				err,
			)
		}
		return nil, err
	}

	return &DeleteTransactionOutput{}, nil
}
