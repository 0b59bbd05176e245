package goal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func limitGoalFixture(category string, target float64) *entity.Goal {
	return entity.NewGoal(
		entity.GoalTypePersonal,
		entity.GoalKindLimit,
		category,
		"Spend cap",
		"",
		target,
		0,
		date(2024, 1, 1),
		date(2024, 1, 31),
	)
}

func expenseFixture(category string, amount float64, when time.Time) *entity.Transaction {
	return entity.NewTransaction(when, "", decimal.NewFromFloat(amount), entity.TransactionTypeExpense, category)
}

func TestRecomputeGoalsFromLedger(t *testing.T) {
	limit := limitGoalFixture("Lazer", 800)
	accumulation := seededGoal(entity.GoalStatusActive)
	accumulation.CurrentValue = 200

	goalRepo := &fakeGoalRepo{goals: []*entity.Goal{limit, accumulation}}
	transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		expenseFixture("Lazer", 200, date(2024, 1, 5)),
		expenseFixture("Lazer e viagens", 450, date(2024, 1, 12)),
		expenseFixture("Lazer", 100, date(2023, 12, 28)), // prior month, ignored
		expenseFixture("Mercado", 90, date(2024, 1, 9)),  // other category, ignored
	}}

	uc := NewRecomputeGoalsUseCase(goalRepo, transactionRepo)
	ref := date(2024, 1, 20)

	output, err := uc.Execute(context.Background(), RecomputeGoalsInput{ReferenceDate: ref})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.UpdatedGoals != 1 {
		t.Errorf("UpdatedGoals = %d, want 1", output.UpdatedGoals)
	}

	recomputed, err := goalRepo.FindByID(context.Background(), limit.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if recomputed.CurrentValue != 650 {
		t.Errorf("limit goal CurrentValue = %v, want 650", recomputed.CurrentValue)
	}

	untouched, err := goalRepo.FindByID(context.Background(), accumulation.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if untouched.CurrentValue != 200 {
		t.Errorf("accumulation goal CurrentValue = %v, want untouched 200", untouched.CurrentValue)
	}
}

func TestRecomputeGoalsIdempotent(t *testing.T) {
	limit := limitGoalFixture("Lazer", 800)
	goalRepo := &fakeGoalRepo{goals: []*entity.Goal{limit}}
	transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		expenseFixture("Lazer", 650, date(2024, 1, 5)),
	}}

	uc := NewRecomputeGoalsUseCase(goalRepo, transactionRepo)
	ref := date(2024, 1, 20)

	first, err := uc.Execute(context.Background(), RecomputeGoalsInput{ReferenceDate: ref})
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.UpdatedGoals != 1 {
		t.Errorf("first pass UpdatedGoals = %d, want 1", first.UpdatedGoals)
	}

	second, err := uc.Execute(context.Background(), RecomputeGoalsInput{ReferenceDate: ref})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if second.UpdatedGoals != 0 {
		t.Errorf("second pass UpdatedGoals = %d, want 0 with an unchanged ledger", second.UpdatedGoals)
	}

	recomputed, _ := goalRepo.FindByID(context.Background(), limit.ID)
	if recomputed.CurrentValue != 650 {
		t.Errorf("CurrentValue = %v, want stable 650", recomputed.CurrentValue)
	}
}
