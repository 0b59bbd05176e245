package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// transactionRepository implements the adapter.TransactionRepository
// interface over the in-memory application state.
type transactionRepository struct {
	state adapter.StateManager
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(state adapter.StateManager) adapter.TransactionRepository {
	return &transactionRepository{
		state: state,
	}
}

// Create appends a new transaction to the ledger.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Transactions = append(snapshot.Transactions, transaction)
		return true
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.state.Snapshot().Transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// FindAll retrieves the full ledger in insertion order.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return r.state.Snapshot().Transactions, nil
}

// Update replaces an existing transaction. An unknown id leaves the state
// untouched: no lastUpdated re-stamp, no scheduled write.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	found := false
	err := r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		for i, t := range snapshot.Transactions {
			if t.ID == transaction.ID {
				snapshot.Transactions[i] = transaction
				found = true
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	if !found {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction permanently. An unknown id leaves the state
// untouched.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	err := r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		for i, t := range snapshot.Transactions {
			if t.ID == id {
				snapshot.Transactions = append(snapshot.Transactions[:i], snapshot.Transactions[i+1:]...)
				found = true
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	if !found {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
