package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	records        []*entity.TransactionWithRefs
	spentByBudget  map[uuid.UUID]decimal.Decimal
	rangeStart     time.Time
	rangeEnd       time.Time
	sumErr         error
	findRangeErr   error
	sumCalls       int
	findRangeCalls int
}

func (s *stubTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }

func (s *stubTransactionRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindByIDWithRefs(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionWithRefs, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter, adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (s *stubTransactionRepo) FindByDateRange(_ context.Context, _ uuid.UUID, start, end time.Time) ([]*entity.TransactionWithRefs, error) {
	s.findRangeCalls++
	s.rangeStart = start
	s.rangeEnd = end
	if s.findRangeErr != nil {
		return nil, s.findRangeErr
	}
	return s.records, nil
}

func (s *stubTransactionRepo) SumExpensesByBudget(_ context.Context, _ uuid.UUID, budgetID uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	s.sumCalls++
	if s.sumErr != nil {
		return decimal.Zero, s.sumErr
	}
	if spent, ok := s.spentByBudget[budgetID]; ok {
		return spent, nil
	}
	return decimal.Zero, nil
}

func (s *stubTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }

func (s *stubTransactionRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubBudgetRepo struct {
	budgets []*entity.Budget
}

func (s *stubBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }

func (s *stubBudgetRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Budget, error) {
	return s.budgets, nil
}

func TestGetAnalyticsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	newUseCase := func(txRepo *stubTransactionRepo, budgetRepo *stubBudgetRepo) *GetAnalyticsUseCase {
		uc := NewGetAnalyticsUseCase(txRepo, budgetRepo)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("computes all four views over the same window", func(t *testing.T) {
		groceries := &entity.Category{Name: "Groceries", Color: "#4caf50"}
		budget := entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), entity.BudgetPeriodMonthly, nil, nil)

		txRepo := &stubTransactionRepo{
			records: []*entity.TransactionWithRefs{
				record(entity.TransactionTypeIncome, "4000", day, nil),
				record(entity.TransactionTypeExpense, "300", day, groceries),
				record(entity.TransactionTypeExpense, "700", day.AddDate(0, 0, 2), nil),
			},
			spentByBudget: map[uuid.UUID]decimal.Decimal{
				budget.ID: decimal.RequireFromString("300"),
			},
		}
		budgetRepo := &stubBudgetRepo{budgets: []*entity.Budget{budget}}

		out, err := newUseCase(txRepo, budgetRepo).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.TotalIncome.Equal(decimal.RequireFromString("4000")))
		assert.True(t, out.TotalExpenses.Equal(decimal.RequireFromString("1000")))
		assert.InDelta(t, 75.0, out.SavingsRate, 0.001)

		require.Len(t, out.SpendingTrends, 2)
		assert.Equal(t, "2024-03-10", out.SpendingTrends[0].Date)
		assert.Equal(t, "2024-03-12", out.SpendingTrends[1].Date)

		require.Len(t, out.CategoryBreakdown, 2)
		assert.Equal(t, "Groceries", out.CategoryBreakdown[0].CategoryName)
		assert.Equal(t, entity.UncategorizedName, out.CategoryBreakdown[1].CategoryName)

		require.Len(t, out.BudgetAnalysis, 1)
		assert.Equal(t, "Food", out.BudgetAnalysis[0].BudgetName)
		assert.True(t, out.BudgetAnalysis[0].Spent.Equal(decimal.RequireFromString("300")))
		assert.True(t, out.BudgetAnalysis[0].Remaining.Equal(decimal.RequireFromString("200")))
		assert.InDelta(t, 60.0, out.BudgetAnalysis[0].Percentage, 0.001)
	})

	t.Run("trend totals reconcile with summary totals", func(t *testing.T) {
		txRepo := &stubTransactionRepo{
			records: []*entity.TransactionWithRefs{
				record(entity.TransactionTypeIncome, "1500", day, nil),
				record(entity.TransactionTypeExpense, "200.25", day, nil),
				record(entity.TransactionTypeIncome, "75.50", day.AddDate(0, 0, 1), nil),
				record(entity.TransactionTypeExpense, "19.75", day.AddDate(0, 0, 5), nil),
			},
		}

		out, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		trendIncome := decimal.Zero
		trendExpense := decimal.Zero
		for _, tr := range out.SpendingTrends {
			trendIncome = trendIncome.Add(tr.Income)
			trendExpense = trendExpense.Add(tr.Expense)
		}
		assert.True(t, trendIncome.Equal(out.TotalIncome))
		assert.True(t, trendExpense.Equal(out.TotalExpenses))
	})

	t.Run("defaults the window to the current month", func(t *testing.T) {
		txRepo := &stubTransactionRepo{}

		_, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), txRepo.rangeStart)
		assert.Equal(t, now, txRepo.rangeEnd)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		start := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		txRepo := &stubTransactionRepo{}

		_, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetAnalyticsInput{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})

		var analyticsErr *domainerror.AnalyticsError
		require.ErrorAs(t, err, &analyticsErr)
		assert.Equal(t, domainerror.ErrCodeInvalidDateRange, analyticsErr.Code)
		assert.Zero(t, txRepo.findRangeCalls)
	})

	t.Run("empty window yields zeroed payload", func(t *testing.T) {
		out, err := newUseCase(&stubTransactionRepo{}, &stubBudgetRepo{}).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		assert.Empty(t, out.SpendingTrends)
		assert.Empty(t, out.CategoryBreakdown)
		assert.Empty(t, out.BudgetAnalysis)
		assert.True(t, out.TotalIncome.IsZero())
		assert.True(t, out.TotalExpenses.IsZero())
		assert.Zero(t, out.SavingsRate)
	})

	t.Run("budget analysis keeps retrieval order and queries every budget", func(t *testing.T) {
		b1 := entity.NewBudget(userID, "Rent", decimal.RequireFromString("1500"), entity.BudgetPeriodMonthly, nil, nil)
		b2 := entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), entity.BudgetPeriodMonthly, nil, nil)
		b3 := entity.NewBudget(userID, "Fun", decimal.RequireFromString("200"), entity.BudgetPeriodMonthly, nil, nil)

		txRepo := &stubTransactionRepo{
			spentByBudget: map[uuid.UUID]decimal.Decimal{
				b2.ID: decimal.RequireFromString("125"),
			},
		}
		budgetRepo := &stubBudgetRepo{budgets: []*entity.Budget{b1, b2, b3}}

		out, err := newUseCase(txRepo, budgetRepo).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		require.Len(t, out.BudgetAnalysis, 3)
		assert.Equal(t, 3, txRepo.sumCalls)
		assert.Equal(t, "Rent", out.BudgetAnalysis[0].BudgetName)
		assert.Equal(t, "Food", out.BudgetAnalysis[1].BudgetName)
		assert.Equal(t, "Fun", out.BudgetAnalysis[2].BudgetName)
		assert.True(t, out.BudgetAnalysis[1].Spent.Equal(decimal.RequireFromString("125")))
		assert.True(t, out.BudgetAnalysis[0].Spent.IsZero())
	})

	t.Run("budget with zero allocation reports zero percentage", func(t *testing.T) {
		b := entity.NewBudget(userID, "Empty", decimal.Zero, entity.BudgetPeriodMonthly, nil, nil)
		txRepo := &stubTransactionRepo{
			spentByBudget: map[uuid.UUID]decimal.Decimal{
				b.ID: decimal.RequireFromString("50"),
			},
		}

		out, err := newUseCase(txRepo, &stubBudgetRepo{budgets: []*entity.Budget{b}}).Execute(context.Background(), GetAnalyticsInput{UserID: userID})
		require.NoError(t, err)

		require.Len(t, out.BudgetAnalysis, 1)
		assert.Zero(t, out.BudgetAnalysis[0].Percentage)
		assert.True(t, out.BudgetAnalysis[0].Remaining.Equal(decimal.RequireFromString("-50")))
	})

	t.Run("propagates a failing spent query", func(t *testing.T) {
		b := entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), entity.BudgetPeriodMonthly, nil, nil)
		txRepo := &stubTransactionRepo{sumErr: errors.New("connection reset")}

		_, err := newUseCase(txRepo, &stubBudgetRepo{budgets: []*entity.Budget{b}}).Execute(context.Background(), GetAnalyticsInput{UserID: userID})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
