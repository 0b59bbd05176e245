package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

func TestUpdateGoalMergesPartialFields(t *testing.T) {
	g := seededGoal(entity.GoalStatusActive)
	before := g.UpdatedAt
	repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
	uc := NewUpdateGoalUseCase(repo)

	title := "Bigger fund"
	target := 2000.0
	output, err := uc.Execute(context.Background(), UpdateGoalInput{
		GoalID:      g.ID,
		Title:       &title,
		TargetValue: &target,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	updated := output.Goal
	if updated.Title != "Bigger fund" || updated.TargetValue != 2000 {
		t.Errorf("merge failed: title=%q target=%v", updated.Title, updated.TargetValue)
	}
	if updated.Category != g.Category || updated.CurrentValue != g.CurrentValue {
		t.Error("unspecified fields must remain unchanged")
	}
	if updated.UpdatedAt.Before(before) {
		t.Error("UpdatedAt must be re-stamped on update")
	}
}

func TestUpdateGoalRejectsInvalidValues(t *testing.T) {
	g := seededGoal(entity.GoalStatusActive)

	badTarget := 0.0
	badTitle := "  "
	badCurrent := -1.0
	end := date(2023, 1, 1) // before the goal's start date

	tests := []struct {
		name     string
		input    UpdateGoalInput
		wantCode domainerror.GoalErrorCode
	}{
		{"zero target", UpdateGoalInput{GoalID: g.ID, TargetValue: &badTarget}, domainerror.ErrCodeInvalidTargetValue},
		{"blank title", UpdateGoalInput{GoalID: g.ID, Title: &badTitle}, domainerror.ErrCodeEmptyGoalTitle},
		{"negative current", UpdateGoalInput{GoalID: g.ID, CurrentValue: &badCurrent}, domainerror.ErrCodeNegativeCurrentValue},
		{"inverted window", UpdateGoalInput{GoalID: g.ID, EndDate: &end}, domainerror.ErrCodeInvalidGoalWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
			uc := NewUpdateGoalUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.input)

			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) || goalErr.Code != tt.wantCode {
				t.Errorf("error = %v, want code %v", err, tt.wantCode)
			}
			if repo.writes != 0 {
				t.Errorf("writes = %d, want 0 after rejected update", repo.writes)
			}
		})
	}
}

func TestUpdateGoalNotFound(t *testing.T) {
	repo := &fakeGoalRepo{}
	uc := NewUpdateGoalUseCase(repo)

	_, err := uc.Execute(context.Background(), UpdateGoalInput{GoalID: uuid.New()})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("error = %v, want code %v", err, domainerror.ErrCodeGoalNotFound)
	}
}

func TestDeleteGoalIsHardDelete(t *testing.T) {
	g := seededGoal(entity.GoalStatusActive)
	repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
	uc := NewDeleteGoalUseCase(repo)

	if _, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(repo.goals) != 0 {
		t.Errorf("store has %d goals, want 0 after hard delete", len(repo.goals))
	}

	_, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID})
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("second delete error = %v, want code %v", err, domainerror.ErrCodeGoalNotFound)
	}
}

func TestListGoalsFilters(t *testing.T) {
	personal := seededGoal(entity.GoalStatusActive)
	business := seededGoal(entity.GoalStatusPaused)
	business.Type = entity.GoalTypeBusiness
	business.Category = entity.GoalCategoryRevenue

	repo := &fakeGoalRepo{goals: []*entity.Goal{personal, business}}
	uc := NewListGoalsUseCase(repo)

	businessType := entity.GoalTypeBusiness
	output, err := uc.Execute(context.Background(), ListGoalsInput{Type: &businessType})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Goals) != 1 || output.Goals[0].Goal.ID != business.ID {
		t.Fatalf("type filter returned %d goals, want only the business goal", len(output.Goals))
	}

	paused := entity.GoalStatusPaused
	output, err = uc.Execute(context.Background(), ListGoalsInput{Status: &paused})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Goals) != 1 || output.Goals[0].Goal.ID != business.ID {
		t.Fatalf("status filter returned %d goals, want only the paused goal", len(output.Goals))
	}
}

func TestListGoalsDerivedFields(t *testing.T) {
	g := seededGoal(entity.GoalStatusActive)
	g.CurrentValue = 500
	g.TargetValue = 1000
	repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
	uc := NewListGoalsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListGoalsInput{ReferenceDate: date(2024, 3, 16)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(output.Goals))
	}

	item := output.Goals[0]
	if item.Progress != 50 {
		t.Errorf("Progress = %v, want 50", item.Progress)
	}
	if item.DaysRemaining <= 0 {
		t.Errorf("DaysRemaining = %v, want positive before the deadline", item.DaysRemaining)
	}
}
