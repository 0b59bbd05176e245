// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/progress"
)

// GoalSummaryInput represents the input for the goal summary aggregate.
type GoalSummaryInput struct {
	ReferenceDate time.Time // Optional, defaults to now
}

// GoalSummaryOutput represents the dashboard summary over all goals.
type GoalSummaryOutput struct {
	Stats entity.GoalStats
}

// GoalSummaryUseCase computes the aggregate figures for the dashboard
// summary cards.
type GoalSummaryUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGoalSummaryUseCase creates a new GoalSummaryUseCase instance.
func NewGoalSummaryUseCase(goalRepo adapter.GoalRepository) *GoalSummaryUseCase {
	return &GoalSummaryUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the summary.
func (uc *GoalSummaryUseCase) Execute(ctx context.Context, input GoalSummaryInput) (*GoalSummaryOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	referenceDate := referenceOrNow(input.ReferenceDate)

	stats := entity.GoalStats{
		TotalGoals: len(goals),
	}

	totalProgress := 0.0
	for _, g := range goals {
		percentage := progress.Percentage(g)
		totalProgress += percentage
		stats.TotalTargetValue += g.TargetValue
		stats.TotalCurrentValue += g.CurrentValue

		switch progress.Status(g, referenceDate) {
		case progress.StatusAchieved:
			stats.AchievedGoals++
		case progress.StatusOverdue:
			stats.OverdueGoals++
		default:
			stats.InProgressGoals++
		}
	}

	if len(goals) > 0 {
		stats.AverageProgress = totalProgress / float64(len(goals))
	}

	return &GoalSummaryOutput{
		Stats: stats,
	}, nil
}
