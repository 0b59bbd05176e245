// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/progress"
)

// ListGoalsInput represents the input for listing goals. All filters are
// optional and combine with AND semantics.
type ListGoalsInput struct {
	Type          *entity.GoalType
	Status        *entity.GoalStatus
	Category      *string
	ReferenceDate time.Time // Optional, defaults to now
}

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// GoalOutput represents a single goal enriched with its derived progress
// fields.
type GoalOutput struct {
	Goal             *entity.Goal
	Progress         float64
	ExpectedProgress float64
	DaysRemaining    int
	Pace             progress.PaceStatus
	DisplayStatus    progress.DisplayStatus
	Alert            progress.AlertLevel
	Overshoot        bool
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	referenceDate := referenceOrNow(input.ReferenceDate)

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}

	for _, g := range goals {
		if input.Type != nil && g.Type != *input.Type {
			continue
		}
		if input.Status != nil && g.Status != *input.Status {
			continue
		}
		if input.Category != nil && g.Category != *input.Category {
			continue
		}

		output.Goals = append(output.Goals, newGoalOutput(g, referenceDate))
	}

	return output, nil
}

// newGoalOutput derives the presentation fields for a goal at the given
// reference date.
func newGoalOutput(g *entity.Goal, referenceDate time.Time) *GoalOutput {
	return &GoalOutput{
		Goal:             g,
		Progress:         progress.Percentage(g),
		ExpectedProgress: progress.ExpectedProgress(g, referenceDate),
		DaysRemaining:    progress.DaysRemaining(g, referenceDate),
		Pace:             progress.Pace(g, referenceDate),
		DisplayStatus:    progress.Status(g, referenceDate),
		Alert:            progress.LimitAlert(g),
		Overshoot:        progress.Overshoot(g),
	}
}

func referenceOrNow(referenceDate time.Time) time.Time {
	if referenceDate.IsZero() {
		return time.Now().UTC()
	}
	return referenceDate
}
