package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Type         string  `json:"type" binding:"required,oneof=personal business"`
	Kind         *string `json:"kind,omitempty" binding:"omitempty,oneof=accumulation limit"`
	Category     string  `json:"category" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description,omitempty"`
	TargetValue  float64 `json:"targetValue" binding:"required,gt=0"`
	CurrentValue float64 `json:"currentValue"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      string  `json:"endDate" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields keep their current values.
type UpdateGoalRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Type         *string  `json:"type,omitempty" binding:"omitempty,oneof=personal business"`
	TargetValue  *float64 `json:"targetValue,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,oneof=active paused completed cancelled"`
}

// GoalResponse represents a single goal in API responses, including the
// derived presentation fields.
type GoalResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Kind             string    `json:"kind"`
	Category         string    `json:"category"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TargetValue      float64   `json:"targetValue"`
	CurrentValue     float64   `json:"currentValue"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Status           string    `json:"status"`
	Progress         float64   `json:"progress"`
	ExpectedProgress float64   `json:"expectedProgress"`
	DaysRemaining    int       `json:"daysRemaining"`
	Pace             string    `json:"pace"`
	DisplayStatus    string    `json:"displayStatus"`
	Alert            string    `json:"alert"`
	Overshoot        bool      `json:"overshoot"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalSummaryResponse represents the dashboard summary over all goals.
type GoalSummaryResponse struct {
	TotalGoals        int     `json:"totalGoals"`
	AchievedGoals     int     `json:"achievedGoals"`
	InProgressGoals   int     `json:"inProgressGoals"`
	OverdueGoals      int     `json:"overdueGoals"`
	TotalTargetValue  float64 `json:"totalTargetValue"`
	TotalCurrentValue float64 `json:"totalCurrentValue"`
	AverageProgress   float64 `json:"averageProgress"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	g := output.Goal
	return GoalResponse{
		ID:               g.ID.String(),
		Type:             string(g.Type),
		Kind:             string(g.Kind),
		Category:         g.Category,
		Title:            g.Title,
		Description:      g.Description,
		TargetValue:      g.TargetValue,
		CurrentValue:     g.CurrentValue,
		StartDate:        g.StartDate.Format(dateLayout),
		EndDate:          g.EndDate.Format(dateLayout),
		Status:           string(g.Status),
		Progress:         output.Progress,
		ExpectedProgress: output.ExpectedProgress,
		DaysRemaining:    output.DaysRemaining,
		Pace:             string(output.Pace),
		DisplayStatus:    string(output.DisplayStatus),
		Alert:            string(output.Alert),
		Overshoot:        output.Overshoot,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}

// ToGoalSummaryResponse converts GoalStats to a GoalSummaryResponse.
func ToGoalSummaryResponse(stats entity.GoalStats) GoalSummaryResponse {
	return GoalSummaryResponse{
		TotalGoals:        stats.TotalGoals,
		AchievedGoals:     stats.AchievedGoals,
		InProgressGoals:   stats.InProgressGoals,
		OverdueGoals:      stats.OverdueGoals,
		TotalTargetValue:  stats.TotalTargetValue,
		TotalCurrentValue: stats.TotalCurrentValue,
		AverageProgress:   stats.AverageProgress,
	}
}
