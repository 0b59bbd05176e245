// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger operations.
type TransactionRepository interface {
	// Create appends a new transaction to the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves the full ledger in insertion order.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update replaces an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
