// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase    *goal.ListGoalsUseCase
	createUseCase  *goal.CreateGoalUseCase
	getUseCase     *goal.GetGoalUseCase
	updateUseCase  *goal.UpdateGoalUseCase
	deleteUseCase  *goal.DeleteGoalUseCase
	toggleUseCase  *goal.ToggleGoalUseCase
	summaryUseCase *goal.GoalSummaryUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	toggleUseCase *goal.ToggleGoalUseCase,
	summaryUseCase *goal.GoalSummaryUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		toggleUseCase:  toggleUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	input := goal.ListGoalsInput{}

	if value := ctx.Query("type"); value != "" {
		goalType := entity.GoalType(value)
		input.Type = &goalType
	}
	if value := ctx.Query("status"); value != "" {
		status := entity.GoalStatus(value)
		input.Status = &status
	}
	if value := ctx.Query("category"); value != "" {
		category := value
		input.Category = &category
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	endDate, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateGoalInput{
		Type:         entity.GoalType(req.Type),
		Category:     req.Category,
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		EndDate:      endDate,
	}

	if req.Kind != nil {
		kind := entity.GoalKind(*req.Kind)
		input.Kind = &kind
	}

	if req.StartDate != nil {
		startDate, err := time.ParseInLocation(dateLayout, *req.StartDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.StartDate = startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	getOutput, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: output.Goal.ID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(getOutput.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
	}

	if req.Type != nil {
		goalType := entity.GoalType(*req.Type)
		input.Type = &goalType
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}
	if req.StartDate != nil {
		startDate, err := time.ParseInLocation(dateLayout, *req.StartDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.ParseInLocation(dateLayout, *req.EndDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Toggle handles POST /goals/:id/toggle requests.
func (c *GoalController) Toggle(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	if _, err := c.toggleUseCase.Execute(ctx.Request.Context(), goal.ToggleGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Summary handles GET /goals/summary requests.
func (c *GoalController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), goal.GoalSummaryInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute goal summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSummaryResponse(output.Stats))
}

func (c *GoalController) parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return uuid.Nil, false
	}
	return goalID, true
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalNotToggleable:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyGoalTitle,
		domainerror.ErrCodeInvalidTargetValue,
		domainerror.ErrCodeMissingGoalDeadline,
		domainerror.ErrCodeInvalidGoalWindow,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeNegativeCurrentValue,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
