// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalType classifies a goal as personal or business. It is an orthogonal
// label used for filtering and display only.
type GoalType string

const (
	GoalTypePersonal GoalType = "personal"
	GoalTypeBusiness GoalType = "business"
)

// GoalKind distinguishes accumulation goals (grow currentValue towards the
// target) from limit goals (the target is a spending ceiling and currentValue
// is recomputed from the ledger).
type GoalKind string

const (
	GoalKindAccumulation GoalKind = "accumulation"
	GoalKindLimit        GoalKind = "limit"
)

// GoalStatus represents the stored lifecycle status of a goal. The badge
// shown to the user (achieved/overdue/attention/...) is derived separately
// and never stored.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Well-known goal categories. The category doubles as the substring matched
// against transaction categories for limit goals, so free-form labels are
// allowed as well.
const (
	GoalCategorySavings          = "savings"
	GoalCategoryInvestment       = "investment"
	GoalCategoryExpenseReduction = "expense_reduction"
	GoalCategoryRevenue          = "revenue"
	GoalCategoryProfitMargin     = "profit_margin"
)

// Goal represents a financial goal in the dashboard.
type Goal struct {
	ID           uuid.UUID
	Type         GoalType
	Kind         GoalKind
	Category     string
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	StartDate    time.Time
	EndDate      time.Time
	Status       GoalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// KindForCategory returns the goal kind implied by a category when the caller
// does not tag the goal explicitly. Expense-reduction goals are spend caps;
// everything else accumulates towards the target.
func KindForCategory(category string) GoalKind {
	if category == GoalCategoryExpenseReduction {
		return GoalKindLimit
	}
	return GoalKindAccumulation
}

// NewGoal creates a new Goal entity with status active and fresh timestamps.
func NewGoal(
	goalType GoalType,
	kind GoalKind,
	category string,
	title string,
	description string,
	targetValue float64,
	currentValue float64,
	startDate time.Time,
	endDate time.Time,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		Type:         goalType,
		Kind:         kind,
		Category:     category,
		Title:        title,
		Description:  description,
		TargetValue:  targetValue,
		CurrentValue: currentValue,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       GoalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GoalStats represents aggregate figures over a set of goals, used by the
// dashboard summary cards.
type GoalStats struct {
	TotalGoals        int
	AchievedGoals     int
	InProgressGoals   int
	OverdueGoals      int
	TotalTargetValue  float64
	TotalCurrentValue float64
	AverageProgress   float64
}
