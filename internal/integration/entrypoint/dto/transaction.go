package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. Absent fields keep their current values.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category    *string  `json:"category,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format(dateLayout),
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Type:        string(t.Type),
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}
