// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID        uuid.UUID
	ReferenceDate time.Time // Optional, defaults to now
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *GoalOutput
}

// GetGoalUseCase handles getting a goal by ID.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	return &GetGoalOutput{
		Goal: newGoalOutput(goal, referenceOrNow(input.ReferenceDate)),
	}, nil
}
