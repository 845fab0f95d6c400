package dashboard

import (
	"context"
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
	records    []*entity.TransactionWithRefs
	rangeStart time.Time
	rangeEnd   time.Time
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
	s.rangeStart = start
	s.rangeEnd = end
	return s.records, nil
}

func (s *stubTransactionRepo) SumExpensesByBudget(context.Context, uuid.UUID, uuid.UUID, time.Time, time.Time) (decimal.Decimal, error) {
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

func record(t entity.TransactionType, amount, description string, date time.Time) *entity.TransactionWithRefs {
	return &entity.TransactionWithRefs{
		Transaction: &entity.Transaction{
			Amount:      decimal.RequireFromString(amount),
			Description: description,
			Type:        t,
			Date:        date,
		},
	}
}

func TestGetStatsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	newUseCase := func(txRepo *stubTransactionRepo, budgetRepo *stubBudgetRepo) *GetStatsUseCase {
		uc := NewGetStatsUseCase(txRepo, budgetRepo)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("sums budgets and current month totals", func(t *testing.T) {
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		txRepo := &stubTransactionRepo{
			records: []*entity.TransactionWithRefs{
				record(entity.TransactionTypeIncome, "4000", "salary", day),
				record(entity.TransactionTypeExpense, "1200", "rent", day.AddDate(0, 0, 1)),
				record(entity.TransactionTypeExpense, "300", "groceries", day.AddDate(0, 0, 2)),
			},
		}
		budgetRepo := &stubBudgetRepo{budgets: []*entity.Budget{
			entity.NewBudget(userID, "Rent", decimal.RequireFromString("1500"), entity.BudgetPeriodMonthly, nil, nil),
			entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), entity.BudgetPeriodMonthly, nil, nil),
		}}

		out, err := newUseCase(txRepo, budgetRepo).Execute(context.Background(), GetStatsInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.TotalBudget.Equal(decimal.RequireFromString("2000")))
		assert.True(t, out.TotalSpent.Equal(decimal.RequireFromString("1500")))
		assert.True(t, out.TotalIncome.Equal(decimal.RequireFromString("4000")))
		assert.True(t, out.Remaining.Equal(decimal.RequireFromString("500")))
		assert.Equal(t, 3, out.TransactionCount)
	})

	t.Run("window is the whole current calendar month", func(t *testing.T) {
		txRepo := &stubTransactionRepo{}

		_, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetStatsInput{UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), txRepo.rangeStart)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), txRepo.rangeEnd)
	})

	t.Run("recent transactions are the five newest, newest first", func(t *testing.T) {
		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		records := make([]*entity.TransactionWithRefs, 0, 7)
		for i := 0; i < 7; i++ {
			records = append(records, record(entity.TransactionTypeExpense, "10", string(rune('a'+i)), base.AddDate(0, 0, i)))
		}
		txRepo := &stubTransactionRepo{records: records}

		out, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetStatsInput{UserID: userID})
		require.NoError(t, err)

		require.Len(t, out.RecentTransactions, 5)
		assert.Equal(t, "g", out.RecentTransactions[0].Transaction.Description)
		assert.Equal(t, "c", out.RecentTransactions[4].Transaction.Description)
		assert.Equal(t, 7, out.TransactionCount)
	})

	t.Run("fewer records than the limit returns them all", func(t *testing.T) {
		day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		txRepo := &stubTransactionRepo{
			records: []*entity.TransactionWithRefs{
				record(entity.TransactionTypeExpense, "10", "coffee", day),
				record(entity.TransactionTypeExpense, "20", "lunch", day.AddDate(0, 0, 1)),
			},
		}

		out, err := newUseCase(txRepo, &stubBudgetRepo{}).Execute(context.Background(), GetStatsInput{UserID: userID})
		require.NoError(t, err)

		require.Len(t, out.RecentTransactions, 2)
		assert.Equal(t, "lunch", out.RecentTransactions[0].Transaction.Description)
	})

	t.Run("empty month yields zeroed snapshot", func(t *testing.T) {
		out, err := newUseCase(&stubTransactionRepo{}, &stubBudgetRepo{}).Execute(context.Background(), GetStatsInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.TotalBudget.IsZero())
		assert.True(t, out.TotalSpent.IsZero())
		assert.True(t, out.TotalIncome.IsZero())
		assert.True(t, out.Remaining.IsZero())
		assert.Zero(t, out.TransactionCount)
		assert.Empty(t, out.RecentTransactions)
	})
}
