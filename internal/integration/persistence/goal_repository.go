package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// goalRepository implements the adapter.GoalRepository interface over the
// in-memory application state.
type goalRepository struct {
	state adapter.StateManager
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(state adapter.StateManager) adapter.GoalRepository {
	return &goalRepository{
		state: state,
	}
}

// Create appends a new goal to the collection.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Goals = append(snapshot.Goals, goal)
		return true
	})
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.state.Snapshot().Goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// FindAll retrieves all goals in insertion order.
func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	return r.state.Snapshot().Goals, nil
}

// Update replaces an existing goal. An unknown id leaves the state
// untouched: no lastUpdated re-stamp, no scheduled write.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	found := false
	err := r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		for i, g := range snapshot.Goals {
			if g.ID == goal.ID {
				snapshot.Goals[i] = goal
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
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal permanently. Goals have no trash slot. An unknown id
// leaves the state untouched.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	err := r.state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		for i, g := range snapshot.Goals {
			if g.ID == id {
				snapshot.Goals = append(snapshot.Goals[:i], snapshot.Goals[i+1:]...)
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
		return domainerror.ErrGoalNotFound
	}
	return nil
}
