// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a ledger entry in the dashboard.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
