// Package dashboard contains the dashboard snapshot use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/application/usecase/analytics"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// recentTransactionLimit is how many of the newest transactions the snapshot carries.
const recentTransactionLimit = 5

// GetStatsInput represents the input for the dashboard snapshot.
type GetStatsInput struct {
	UserID uuid.UUID
}

// GetStatsOutput is the dashboard snapshot payload. The window is fixed to
// the current calendar month.
type GetStatsOutput struct {
	TotalBudget        decimal.Decimal               `json:"totalBudget"`
	TotalSpent         decimal.Decimal               `json:"totalSpent"`
	TotalIncome        decimal.Decimal               `json:"totalIncome"`
	Remaining          decimal.Decimal               `json:"remaining"`
	TransactionCount   int                           `json:"transactionCount"`
	RecentTransactions []*entity.TransactionWithRefs `json:"recentTransactions"`
}

// GetStatsUseCase computes the current-month dashboard snapshot: overall
// budget ceiling, month totals and the most recent transactions.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	now             func() time.Time
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes the dashboard snapshot.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	window := analytics.CurrentMonthWindow(uc.now())

	// Total budget sums every budget the user has, regardless of period or
	// dates; only the spending side is window-scoped.
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}
	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.TotalAmount)
	}

	records, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	totalIncome, totalSpent := analytics.SumByType(records)

	// Records arrive date-ascending; the most recent ones sit at the tail.
	recent := make([]*entity.TransactionWithRefs, 0, recentTransactionLimit)
	for i := len(records) - 1; i >= 0 && len(recent) < recentTransactionLimit; i-- {
		recent = append(recent, records[i])
	}

	return &GetStatsOutput{
		TotalBudget:        totalBudget,
		TotalSpent:         totalSpent,
		TotalIncome:        totalIncome,
		Remaining:          totalBudget.Sub(totalSpent),
		TransactionCount:   len(records),
		RecentTransactions: recent,
	}, nil
}
