package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateGoalSuccess(t *testing.T) {
	repo := &fakeGoalRepo{}
	uc := NewCreateGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateGoalInput{
		Type:        entity.GoalTypePersonal,
		Category:    entity.GoalCategorySavings,
		Title:       "  Emergency fund  ",
		TargetValue: 1000,
		StartDate:   date(2024, 1, 1),
		EndDate:     date(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	g := output.Goal
	if g.Title != "Emergency fund" {
		t.Errorf("title = %q, want trimmed title", g.Title)
	}
	if g.Status != entity.GoalStatusActive {
		t.Errorf("status = %v, want active", g.Status)
	}
	if g.Kind != entity.GoalKindAccumulation {
		t.Errorf("kind = %v, want accumulation for savings", g.Kind)
	}
	if g.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if g.CreatedAt.IsZero() || g.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}
	if repo.writes != 1 {
		t.Errorf("writes = %d, want 1", repo.writes)
	}
}

func TestCreateGoalLimitKindFromCategory(t *testing.T) {
	repo := &fakeGoalRepo{}
	uc := NewCreateGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateGoalInput{
		Type:        entity.GoalTypePersonal,
		Category:    entity.GoalCategoryExpenseReduction,
		Title:       "Cut leisure spend",
		TargetValue: 800,
		EndDate:     date(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Goal.Kind != entity.GoalKindLimit {
		t.Errorf("kind = %v, want limit for expense_reduction", output.Goal.Kind)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateGoalInput
		wantCode domainerror.GoalErrorCode
	}{
		{
			name: "empty title",
			input: CreateGoalInput{
				Type:        entity.GoalTypePersonal,
				Category:    entity.GoalCategorySavings,
				Title:       "   ",
				TargetValue: 100,
				EndDate:     date(2024, 1, 1),
			},
			wantCode: domainerror.ErrCodeEmptyGoalTitle,
		},
		{
			name: "non-positive target",
			input: CreateGoalInput{
				Type:        entity.GoalTypePersonal,
				Category:    entity.GoalCategorySavings,
				Title:       "Save",
				TargetValue: 0,
				EndDate:     date(2024, 1, 1),
			},
			wantCode: domainerror.ErrCodeInvalidTargetValue,
		},
		{
			name: "negative current value",
			input: CreateGoalInput{
				Type:         entity.GoalTypePersonal,
				Category:     entity.GoalCategorySavings,
				Title:        "Save",
				TargetValue:  100,
				CurrentValue: -5,
				EndDate:      date(2024, 1, 1),
			},
			wantCode: domainerror.ErrCodeNegativeCurrentValue,
		},
		{
			name: "missing deadline",
			input: CreateGoalInput{
				Type:        entity.GoalTypePersonal,
				Category:    entity.GoalCategorySavings,
				Title:       "Save",
				TargetValue: 100,
			},
			wantCode: domainerror.ErrCodeMissingGoalDeadline,
		},
		{
			name: "start after end",
			input: CreateGoalInput{
				Type:        entity.GoalTypePersonal,
				Category:    entity.GoalCategorySavings,
				Title:       "Save",
				TargetValue: 100,
				StartDate:   date(2024, 3, 1),
				EndDate:     date(2024, 1, 1),
			},
			wantCode: domainerror.ErrCodeInvalidGoalWindow,
		},
		{
			name: "invalid type",
			input: CreateGoalInput{
				Type:        entity.GoalType("corporate"),
				Category:    entity.GoalCategorySavings,
				Title:       "Save",
				TargetValue: 100,
				EndDate:     date(2024, 1, 1),
			},
			wantCode: domainerror.ErrCodeInvalidGoalType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeGoalRepo{}
			uc := NewCreateGoalUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("Execute() expected error")
			}

			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) {
				t.Fatalf("Execute() error = %v, want GoalError", err)
			}
			if goalErr.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", goalErr.Code, tt.wantCode)
			}

			// A rejected input must not touch the store.
			if repo.writes != 0 {
				t.Errorf("writes = %d, want 0 after validation failure", repo.writes)
			}
			if len(repo.goals) != 0 {
				t.Errorf("store has %d goals, want 0", len(repo.goals))
			}
		})
	}
}
