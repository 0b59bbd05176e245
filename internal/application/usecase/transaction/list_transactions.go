// Package transaction contains ledger-related use cases.
package transaction

import (
	"context"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Filters are optional and combine with AND semantics.
type ListTransactionsInput struct {
	Type     *entity.TransactionType
	Category *string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*entity.Transaction, 0, len(transactions)),
	}

	for _, t := range transactions {
		if input.Type != nil && t.Type != *input.Type {
			continue
		}
		if input.Category != nil && t.Category != *input.Category {
			continue
		}
		output.Transactions = append(output.Transactions, t)
	}

	return output, nil
}
