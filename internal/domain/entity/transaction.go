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

// Transaction represents a single income or expense record in the Budget
// Planner system. Amounts are always positive; the Type field decides which
// side of the ledger they land on.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Type        TransactionType
	Date        time.Time
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	BudgetID    *uuid.UUID // Optional, counts against a budget when set
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	transactionType TransactionType,
	date time.Time,
	categoryID *uuid.UUID,
	budgetID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Type:        transactionType,
		Date:        date,
		CategoryID:  categoryID,
		BudgetID:    budgetID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithRefs represents a transaction joined with its optional
// category and budget reference data.
type TransactionWithRefs struct {
	Transaction *Transaction
	Category    *Category
	Budget      *Budget
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithRefs
	TotalCount   int64
	CurrentPage  int
	TotalPages   int
}
