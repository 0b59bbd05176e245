// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Success bool
}

// DeleteGoalUseCase handles goal deletion logic. Deletion is permanent:
// goals have no trash or restore path.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	return &DeleteGoalOutput{
		Success: true,
	}, nil
}
