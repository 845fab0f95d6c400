// Package analytics contains the financial aggregation use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-planner/backend/internal/application/adapter"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// GetAnalyticsInput represents the input for the analytics aggregation.
// Nil dates fall back to the default window (start of current month to now).
type GetAnalyticsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// BudgetAnalysis holds the utilization of one budget over the analysed window.
type BudgetAnalysis struct {
	BudgetName string          `json:"budgetName"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// GetAnalyticsOutput is the full analytics payload: four derived views over
// the same window-scoped record set.
type GetAnalyticsOutput struct {
	SpendingTrends    []SpendingTrend     `json:"spendingTrends"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	BudgetAnalysis    []BudgetAnalysis    `json:"budgetAnalysis"`
	TotalIncome       decimal.Decimal     `json:"totalIncome"`
	TotalExpenses     decimal.Decimal     `json:"totalExpenses"`
	SavingsRate       float64             `json:"savingsRate"`
}

// GetAnalyticsUseCase turns a user's window-scoped ledger into spending
// trends, category breakdown, budget analysis and summary totals. It is
// stateless between invocations and persists nothing.
type GetAnalyticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	now             func() time.Time
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes the analytics payload for the resolved window.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	window := ResolveWindow(input.StartDate, input.EndDate, uc.now())
	if window.End.Before(window.Start) {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	records, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	// Each budget's spent query is independent of the others, so they are
	// issued concurrently. Output order stays the budget retrieval order.
	analysis := make([]BudgetAnalysis, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range budgets {
		i, b := i, b
		g.Go(func() error {
			spent, err := uc.transactionRepo.SumExpensesByBudget(gctx, input.UserID, b.ID, window.Start, window.End)
			if err != nil {
				return fmt.Errorf("failed to sum spending for budget %s: %w", b.ID, err)
			}
			analysis[i] = BudgetAnalysis{
				BudgetName: b.Name,
				Budgeted:   b.TotalAmount,
				Spent:      spent,
				Remaining:  b.TotalAmount.Sub(spent),
				Percentage: ratioPercent(spent, b.TotalAmount),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown, totalExpenses := BuildCategoryBreakdown(records)
	totalIncome, _ := SumByType(records)

	return &GetAnalyticsOutput{
		SpendingTrends:    BuildSpendingTrends(records),
		CategoryBreakdown: breakdown,
		BudgetAnalysis:    analysis,
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		SavingsRate:       SavingsRate(totalIncome, totalExpenses),
	}, nil
}
