package persistence

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

func newTestTransaction(userID uuid.UUID, amount string, txType entity.TransactionType, date time.Time, categoryID, budgetID *uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.RequireFromString(amount), "test", txType, date, categoryID, budgetID)
}

func TestTransactionRepository_FindByDateRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	category := entity.NewCategory("Groceries", "#4caf50", "shopping_cart", entity.CategoryTypeExpense, nil)
	require.NoError(t, categoryRepo.Create(ctx, category))

	march := func(day int) time.Time {
		return time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC)
	}

	inside := newTestTransaction(userID, "100", entity.TransactionTypeExpense, march(10), &category.ID, nil)
	later := newTestTransaction(userID, "50", entity.TransactionTypeIncome, march(20), nil, nil)
	outside := newTestTransaction(userID, "999", entity.TransactionTypeExpense, march(31), nil, nil)
	foreign := newTestTransaction(uuid.New(), "77", entity.TransactionTypeExpense, march(10), nil, nil)
	for _, tx := range []*entity.Transaction{later, inside, outside, foreign} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	records, err := repo.FindByDateRange(ctx, userID, march(1), march(25))
	require.NoError(t, err)

	require.Len(t, records, 2)
	// Ascending by date, with joined references resolved.
	assert.Equal(t, inside.ID, records[0].Transaction.ID)
	require.NotNil(t, records[0].Category)
	assert.Equal(t, "Groceries", records[0].Category.Name)
	assert.Equal(t, later.ID, records[1].Transaction.ID)
	assert.Nil(t, records[1].Category)
}

func TestTransactionRepository_SumExpensesByBudget(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	budgetRepo := NewBudgetRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	budget := entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), entity.BudgetPeriodMonthly, nil, nil)
	require.NoError(t, budgetRepo.Create(ctx, budget))

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, tx := range []*entity.Transaction{
		newTestTransaction(userID, "100.50", entity.TransactionTypeExpense, day, nil, &budget.ID),
		newTestTransaction(userID, "49.50", entity.TransactionTypeExpense, day.AddDate(0, 0, 1), nil, &budget.ID),
		// Income against the budget does not count as spending.
		newTestTransaction(userID, "1000", entity.TransactionTypeIncome, day, nil, &budget.ID),
		// Expense outside the window.
		newTestTransaction(userID, "300", entity.TransactionTypeExpense, day.AddDate(0, 1, 0), nil, &budget.ID),
		// Expense without a budget reference.
		newTestTransaction(userID, "75", entity.TransactionTypeExpense, day, nil, nil),
	} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	t.Run("sums window scoped expenses only", func(t *testing.T) {
		sum, err := repo.SumExpensesByBudget(ctx, userID, budget.ID,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, sum.Equal(decimal.RequireFromString("150")), sum.String())
	})

	t.Run("no matching rows yields zero", func(t *testing.T) {
		sum, err := repo.SumExpensesByBudget(ctx, userID, uuid.New(),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		txType := entity.TransactionTypeExpense
		if i%3 == 0 {
			txType = entity.TransactionTypeIncome
		}
		require.NoError(t, repo.Create(ctx, newTestTransaction(userID, "10", txType, base.AddDate(0, 0, i), nil, nil)))
	}

	t.Run("paginates date descending", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, int64(12), result.TotalCount)
		assert.Equal(t, 1, result.CurrentPage)
		assert.Equal(t, 2, result.TotalPages)
		require.Len(t, result.Transactions, 10)
		assert.Equal(t, base.AddDate(0, 0, 11), result.Transactions[0].Transaction.Date)

		second, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID},
			adapter.TransactionPagination{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, second.Transactions, 2)
	})

	t.Run("filters by type", func(t *testing.T) {
		income := entity.TransactionTypeIncome
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID, Type: &income},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, int64(4), result.TotalCount)
		for _, r := range result.Transactions {
			assert.Equal(t, entity.TransactionTypeIncome, r.Transaction.Type)
		}
	})

	t.Run("filters by date bounds", func(t *testing.T) {
		start := base.AddDate(0, 0, 5)
		end := base.AddDate(0, 0, 8)
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID, StartDate: &start, EndDate: &end},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, int64(4), result.TotalCount)
	})

	t.Run("empty result keeps one page", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: uuid.New()},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Zero(t, result.TotalCount)
		assert.Equal(t, 1, result.TotalPages)
		assert.Empty(t, result.Transactions)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	tx := newTestTransaction(userID, "100", entity.TransactionTypeExpense, day, nil, nil)
	require.NoError(t, repo.Create(ctx, tx))

	t.Run("another user cannot delete", func(t *testing.T) {
		err := repo.Delete(ctx, tx.ID, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("deleted rows disappear from aggregations", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, tx.ID, userID))

		_, err := repo.FindByID(ctx, tx.ID, userID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

		records, err := repo.FindByDateRange(ctx, userID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
