// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	Title        *string
	Description  *string
	Category     *string
	Type         *entity.GoalType
	TargetValue  *float64
	CurrentValue *float64
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeEmptyGoalTitle,
				"title must not be empty",
				domainerror.ErrEmptyGoalTitle,
			)
		}
		updated.Title = title
	}

	if input.Description != nil {
		updated.Description = *input.Description
	}

	if input.Category != nil {
		updated.Category = *input.Category
	}

	if input.Type != nil {
		if *input.Type != entity.GoalTypePersonal && *input.Type != entity.GoalTypeBusiness {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalType,
				"type must be 'personal' or 'business'",
				domainerror.ErrInvalidGoalType,
			)
		}
		updated.Type = *input.Type
	}

	if input.TargetValue != nil {
		if *input.TargetValue <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetValue,
				"target value must be greater than zero",
				domainerror.ErrInvalidTargetValue,
			)
		}
		updated.TargetValue = *input.TargetValue
	}

	// Accepted for limit goals too, but ledger-owned: the next recompute
	// pass overwrites it.
	if input.CurrentValue != nil {
		if *input.CurrentValue < 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeNegativeCurrentValue,
				"current value must not be negative",
				domainerror.ErrNegativeCurrentValue,
			)
		}
		updated.CurrentValue = *input.CurrentValue
	}

	if input.StartDate != nil {
		updated.StartDate = *input.StartDate
	}

	if input.EndDate != nil {
		updated.EndDate = *input.EndDate
	}

	if updated.StartDate.After(updated.EndDate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalWindow,
			"start date must not be after end date",
			domainerror.ErrInvalidGoalWindow,
		)
	}

	if input.Status != nil {
		updated.Status = *input.Status
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: &updated,
	}, nil
}
