// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// TotalAmount accepts a JSON number or string and is parsed as a decimal.
type CreateBudgetRequest struct {
	Name        string          `json:"name" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	Period      *string         `json:"period,omitempty" binding:"omitempty,oneof=monthly yearly custom"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TotalAmount float64   `json:"totalAmount"`
	Period      string    `json:"period"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		TotalAmount: b.TotalAmount.InexactFloat64(),
		Period:      string(b.Period),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.StartDate != nil {
		dateStr := b.StartDate.Format("2006-01-02")
		response.StartDate = &dateStr
	}
	if b.EndDate != nil {
		dateStr := b.EndDate.Format("2006-01-02")
		response.EndDate = &dateStr
	}

	return response
}

// ToBudgetListResponse converts a list of budgets to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
