package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles ledger endpoints. Every mutation triggers a
// recompute of limit goals, so derived values never lag behind the ledger.
type TransactionController struct {
	listUseCase      *transaction.ListTransactionsUseCase
	createUseCase    *transaction.CreateTransactionUseCase
	updateUseCase    *transaction.UpdateTransactionUseCase
	deleteUseCase    *transaction.DeleteTransactionUseCase
	recomputeUseCase *goal.RecomputeGoalsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	recomputeUseCase *goal.RecomputeGoalsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		recomputeUseCase: recomputeUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

	if value := ctx.Query("type"); value != "" {
		transactionType := entity.TransactionType(value)
		input.Type = &transactionType
	}
	if value := ctx.Query("category"); value != "" {
		category := value
		input.Category = &category
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Date:        date,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	c.recomputeGoals(ctx)

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Description:   req.Description,
		Category:      req.Category,
	}

	if req.Date != nil {
		date, err := time.ParseInLocation(dateLayout, *req.Date, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	c.recomputeGoals(ctx)

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	input := transaction.DeleteTransactionInput{TransactionID: transactionID}
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	c.recomputeGoals(ctx)

	ctx.Status(http.StatusNoContent)
}

// recomputeGoals refreshes limit goal progress after a ledger mutation. The
// mutation already succeeded, so a recompute failure is logged rather than
// turned into an error response.
func (c *TransactionController) recomputeGoals(ctx *gin.Context) {
	input := goal.RecomputeGoalsInput{}
	if _, err := c.recomputeUseCase.Execute(ctx.Request.Context(), input); err != nil {
		slog.Warn("Goal recompute after ledger mutation failed", "error", err)
	}
}

func (c *TransactionController) parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return uuid.Nil, false
	}
	return transactionID, true
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(transactionErr.Code), dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeEmptyTransactionCategory,
		domainerror.ErrCodeMissingTransactionDate,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
