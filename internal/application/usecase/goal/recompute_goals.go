// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/progress"
)

// RecomputeGoalsInput represents the input for a ledger-driven recompute pass.
type RecomputeGoalsInput struct {
	ReferenceDate time.Time // Optional, defaults to now
}

// RecomputeGoalsOutput represents the output of a recompute pass.
type RecomputeGoalsOutput struct {
	UpdatedGoals int
}

// RecomputeGoalsUseCase rewrites the current value of every limit goal from
// the transaction ledger. It runs after every ledger mutation and is
// idempotent: the consumption window is the reference date's calendar month,
// so repeating the pass with the same ledger yields the same values.
type RecomputeGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewRecomputeGoalsUseCase creates a new RecomputeGoalsUseCase instance.
func NewRecomputeGoalsUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
) *RecomputeGoalsUseCase {
	return &RecomputeGoalsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the recompute pass.
func (uc *RecomputeGoalsUseCase) Execute(ctx context.Context, input RecomputeGoalsInput) (*RecomputeGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	referenceDate := referenceOrNow(input.ReferenceDate)
	updated := 0

	for _, g := range goals {
		if g.Kind != entity.GoalKindLimit {
			continue
		}

		consumption := progress.LimitConsumption(g, transactions, referenceDate)
		if consumption == g.CurrentValue {
			continue
		}

		recomputed := *g
		recomputed.CurrentValue = consumption
		recomputed.UpdatedAt = time.Now().UTC()

		if err := uc.goalRepo.Update(ctx, &recomputed); err != nil {
			return nil, fmt.Errorf("failed to update goal %s: %w", g.ID, err)
		}
		updated++
	}

	return &RecomputeGoalsOutput{
		UpdatedGoals: updated,
	}, nil
}
