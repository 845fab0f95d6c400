// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type for a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Budget represents an allocation ceiling for a period. Spending against a
// budget is computed from the expense transactions that reference it, within
// whatever date window the caller analyses. The budget's own start and end
// dates do not filter that query.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	TotalAmount decimal.Decimal
	Period      BudgetPeriod
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	name string,
	totalAmount decimal.Decimal,
	period BudgetPeriod,
	startDate, endDate *time.Time,
) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		TotalAmount: totalAmount,
		Period:      period,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
