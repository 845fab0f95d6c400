// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Name        string
	TotalAmount decimal.Decimal
	Period      *entity.BudgetPeriod // Optional, defaults to monthly
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation. Start and end dates default to the
// bounds of the current calendar month.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.TotalAmount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"total amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	period := entity.BudgetPeriodMonthly
	if input.Period != nil {
		if !isValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'monthly', 'yearly', or 'custom'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		period = *input.Period
	}

	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	budget := entity.NewBudget(
		input.UserID,
		input.Name,
		input.TotalAmount,
		period,
		&startDate,
		&endDate,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	return period == entity.BudgetPeriodMonthly ||
		period == entity.BudgetPeriodYearly ||
		period == entity.BudgetPeriodCustom
}
