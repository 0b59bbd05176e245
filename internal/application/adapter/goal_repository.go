// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal state operations. The backing
// store is the in-memory snapshot cache; mutations schedule a debounced
// durable write.
type GoalRepository interface {
	// Create appends a new goal to the collection.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves all goals in insertion order.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// Update replaces an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal permanently. Goals have no trash slot.
	Delete(ctx context.Context, id uuid.UUID) error
}
