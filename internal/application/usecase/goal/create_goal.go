// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Type         entity.GoalType
	Kind         *entity.GoalKind // Optional, defaults from the category
	Category     string
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	StartDate    time.Time // Optional, defaults to today
	EndDate      time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation. Validation runs before any state is
// touched, so a rejected input never reaches persistence.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title must not be empty",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	// Creation-time validation keeps division by zero unreachable in the
	// progress calculator.
	if input.TargetValue <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}

	if input.CurrentValue < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeCurrentValue,
			"current value must not be negative",
			domainerror.ErrNegativeCurrentValue,
		)
	}

	if input.EndDate.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalDeadline,
			"end date is required",
			domainerror.ErrMissingGoalDeadline,
		)
	}

	if input.Type != entity.GoalTypePersonal && input.Type != entity.GoalTypeBusiness {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be 'personal' or 'business'",
			domainerror.ErrInvalidGoalType,
		)
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		now := time.Now().UTC()
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if startDate.After(input.EndDate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalWindow,
			"start date must not be after end date",
			domainerror.ErrInvalidGoalWindow,
		)
	}

	kind := entity.KindForCategory(input.Category)
	if input.Kind != nil {
		kind = *input.Kind
	}

	goal := entity.NewGoal(
		input.Type,
		kind,
		input.Category,
		title,
		input.Description,
		input.TargetValue,
		input.CurrentValue,
		startDate,
		input.EndDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
