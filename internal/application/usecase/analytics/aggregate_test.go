package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-planner/backend/internal/domain/entity"
)

func record(t entity.TransactionType, amount string, date time.Time, category *entity.Category) *entity.TransactionWithRefs {
	return &entity.TransactionWithRefs{
		Transaction: &entity.Transaction{
			Amount: decimal.RequireFromString(amount),
			Type:   t,
			Date:   date,
		},
		Category: category,
	}
}

func TestBuildSpendingTrends(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 3, 18, 0, 0, 0, time.UTC)

	t.Run("groups by calendar day and orders ascending", func(t *testing.T) {
		trends := BuildSpendingTrends([]*entity.TransactionWithRefs{
			record(entity.TransactionTypeExpense, "20.50", day2, nil),
			record(entity.TransactionTypeIncome, "1000", day1, nil),
			record(entity.TransactionTypeExpense, "49.50", day1, nil),
			record(entity.TransactionTypeExpense, "30", day2, nil),
		})

		require.Len(t, trends, 2)
		assert.Equal(t, "2024-03-01", trends[0].Date)
		assert.True(t, trends[0].Income.Equal(decimal.RequireFromString("1000")))
		assert.True(t, trends[0].Expense.Equal(decimal.RequireFromString("49.50")))
		assert.Equal(t, "2024-03-03", trends[1].Date)
		assert.True(t, trends[1].Income.IsZero())
		assert.True(t, trends[1].Expense.Equal(decimal.RequireFromString("50.50")))
	})

	t.Run("omits days without records", func(t *testing.T) {
		trends := BuildSpendingTrends([]*entity.TransactionWithRefs{
			record(entity.TransactionTypeExpense, "10", day1, nil),
		})

		require.Len(t, trends, 1)
		assert.Equal(t, "2024-03-01", trends[0].Date)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, BuildSpendingTrends(nil))
	})
}

func TestBuildCategoryBreakdown(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	groceries := &entity.Category{Name: "Groceries", Color: "#4caf50"}
	rent := &entity.Category{Name: "Rent", Color: "#f44336"}

	t.Run("groups expenses only, uncategorized fallback", func(t *testing.T) {
		groups, total := BuildCategoryBreakdown([]*entity.TransactionWithRefs{
			record(entity.TransactionTypeExpense, "60", day, groceries),
			record(entity.TransactionTypeIncome, "5000", day, nil),
			record(entity.TransactionTypeExpense, "25", day, nil),
			record(entity.TransactionTypeExpense, "40", day, groceries),
			record(entity.TransactionTypeExpense, "75", day, rent),
		})

		require.True(t, total.Equal(decimal.RequireFromString("200")))
		require.Len(t, groups, 3)

		// Order is first appearance in the record set.
		assert.Equal(t, "Groceries", groups[0].CategoryName)
		assert.True(t, groups[0].Amount.Equal(decimal.RequireFromString("100")))
		assert.Equal(t, "#4caf50", groups[0].Color)
		assert.InDelta(t, 50.0, groups[0].Percentage, 0.001)

		assert.Equal(t, entity.UncategorizedName, groups[1].CategoryName)
		assert.Equal(t, entity.UncategorizedColor, groups[1].Color)
		assert.InDelta(t, 12.5, groups[1].Percentage, 0.001)

		assert.Equal(t, "Rent", groups[2].CategoryName)
		assert.InDelta(t, 37.5, groups[2].Percentage, 0.001)
	})

	t.Run("percentages sum to roughly one hundred", func(t *testing.T) {
		groups, _ := BuildCategoryBreakdown([]*entity.TransactionWithRefs{
			record(entity.TransactionTypeExpense, "33.33", day, groceries),
			record(entity.TransactionTypeExpense, "33.33", day, rent),
			record(entity.TransactionTypeExpense, "33.34", day, nil),
		})

		sum := 0.0
		for _, g := range groups {
			sum += g.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.05)
	})

	t.Run("income only yields zero total and no groups", func(t *testing.T) {
		groups, total := BuildCategoryBreakdown([]*entity.TransactionWithRefs{
			record(entity.TransactionTypeIncome, "5000", day, nil),
		})

		assert.Empty(t, groups)
		assert.True(t, total.IsZero())
	})
}

func TestSumByType(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	income, expenses := SumByType([]*entity.TransactionWithRefs{
		record(entity.TransactionTypeIncome, "3000", day, nil),
		record(entity.TransactionTypeExpense, "1200.55", day, nil),
		record(entity.TransactionTypeIncome, "250", day, nil),
		record(entity.TransactionTypeExpense, "99.45", day, nil),
	})

	assert.True(t, income.Equal(decimal.RequireFromString("3250")))
	assert.True(t, expenses.Equal(decimal.RequireFromString("1300")))
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		want     float64
	}{
		{name: "positive savings", income: "4000", expenses: "3000", want: 25},
		{name: "spending exceeds income", income: "1000", expenses: "1500", want: -50},
		{name: "no income", income: "0", expenses: "500", want: 0},
		{name: "break even", income: "2000", expenses: "2000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsRate(
				decimal.RequireFromString(tt.income),
				decimal.RequireFromString(tt.expenses),
			)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
