// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// ToggleGoalInput represents the input for pausing or resuming a goal.
type ToggleGoalInput struct {
	GoalID uuid.UUID
}

// ToggleGoalOutput represents the output of a goal toggle.
type ToggleGoalOutput struct {
	Goal *entity.Goal
}

// ToggleGoalUseCase flips a goal between active and paused. Completed and
// cancelled goals are terminal; toggling them is rejected with an explicit
// error rather than silently ignored.
type ToggleGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewToggleGoalUseCase creates a new ToggleGoalUseCase instance.
func NewToggleGoalUseCase(goalRepo adapter.GoalRepository) *ToggleGoalUseCase {
	return &ToggleGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal toggle.
func (uc *ToggleGoalUseCase) Execute(ctx context.Context, input ToggleGoalInput) (*ToggleGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	updated := *goal

	switch goal.Status {
	case entity.GoalStatusActive:
		updated.Status = entity.GoalStatusPaused
	case entity.GoalStatusPaused:
		updated.Status = entity.GoalStatusActive
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotToggleable,
			fmt.Sprintf("a %s goal cannot be paused or resumed", goal.Status),
			domainerror.ErrGoalNotToggleable,
		)
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &ToggleGoalOutput{
		Goal: &updated,
	}, nil
}
