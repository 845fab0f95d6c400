// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Date        *time.Time      `json:"date,omitempty"`
	CategoryID  *string         `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	BudgetID    *string         `json:"budgetId,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left untouched.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Date        *time.Time       `json:"date,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	BudgetID    *string          `json:"budgetId,omitempty" binding:"omitempty,uuid"`
}

// TransactionResponse represents a transaction in API responses, with its
// category and budget references resolved when present.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Date        time.Time         `json:"date"`
	CategoryID  *string           `json:"categoryId,omitempty"`
	BudgetID    *string           `json:"budgetId,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Budget      *BudgetResponse   `json:"budget,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TransactionListResponse represents the paginated transaction listing payload.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalCount   int64                 `json:"totalCount"`
	CurrentPage  int                   `json:"currentPage"`
	TotalPages   int                   `json:"totalPages"`
}

// ToTransactionResponse converts a transaction with references to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.TransactionWithRefs) TransactionResponse {
	response := TransactionResponse{
		ID:          t.Transaction.ID.String(),
		Amount:      t.Transaction.Amount.InexactFloat64(),
		Description: t.Transaction.Description,
		Type:        string(t.Transaction.Type),
		Date:        t.Transaction.Date,
		CreatedAt:   t.Transaction.CreatedAt,
		UpdatedAt:   t.Transaction.UpdatedAt,
	}

	if t.Transaction.CategoryID != nil {
		categoryID := t.Transaction.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if t.Transaction.BudgetID != nil {
		budgetID := t.Transaction.BudgetID.String()
		response.BudgetID = &budgetID
	}
	if t.Category != nil {
		category := ToCategoryResponse(t.Category)
		response.Category = &category
	}
	if t.Budget != nil {
		budget := ToBudgetResponse(t.Budget)
		response.Budget = &budget
	}

	return response
}

// ToTransactionListResponse converts a listing result to a
// TransactionListResponse DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, t := range result.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		TotalCount:   result.TotalCount,
		CurrentPage:  result.CurrentPage,
		TotalPages:   result.TotalPages,
	}
}
