// Package analytics contains the financial aggregation use cases.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// trendDateFormat is the day key used for spending trends.
const trendDateFormat = "2006-01-02"

// SpendingTrend holds the income and expense sums for a single calendar day.
type SpendingTrend struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryBreakdown holds the expense total of one category group and its
// share of all expenses in the window.
type CategoryBreakdown struct {
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Color        string          `json:"color"`
	Percentage   float64         `json:"percentage"`
}

// BuildSpendingTrends groups records by calendar day, accumulating income and
// expense sums separately. Days without records are omitted, not zero-filled;
// the result is ordered by day ascending.
func BuildSpendingTrends(records []*entity.TransactionWithRefs) []SpendingTrend {
	type daySums struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}

	byDay := make(map[string]*daySums)
	for _, r := range records {
		key := r.Transaction.Date.Format(trendDateFormat)
		sums, ok := byDay[key]
		if !ok {
			sums = &daySums{income: decimal.Zero, expense: decimal.Zero}
			byDay[key] = sums
		}
		switch r.Transaction.Type {
		case entity.TransactionTypeIncome:
			sums.income = sums.income.Add(r.Transaction.Amount)
		case entity.TransactionTypeExpense:
			sums.expense = sums.expense.Add(r.Transaction.Amount)
		}
	}

	trends := make([]SpendingTrend, 0, len(byDay))
	for day, sums := range byDay {
		trends = append(trends, SpendingTrend{
			Date:    day,
			Income:  sums.income,
			Expense: sums.expense,
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})
	return trends
}

// BuildCategoryBreakdown groups expense records by resolved category name and
// computes each group's share of the total expenses. Records without a
// resolvable category fall into the Uncategorized group. Groups keep the order
// in which their category first appears in the record set; every percentage is
// 0 when the expense total is 0.
func BuildCategoryBreakdown(records []*entity.TransactionWithRefs) ([]CategoryBreakdown, decimal.Decimal) {
	totalExpenses := decimal.Zero
	groups := make([]CategoryBreakdown, 0)
	indexByName := make(map[string]int)

	for _, r := range records {
		if r.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}

		amount := r.Transaction.Amount
		totalExpenses = totalExpenses.Add(amount)

		name := entity.UncategorizedName
		color := entity.UncategorizedColor
		if r.Category != nil {
			name = r.Category.Name
			color = r.Category.Color
		}

		idx, ok := indexByName[name]
		if !ok {
			groups = append(groups, CategoryBreakdown{
				CategoryName: name,
				Amount:       decimal.Zero,
				Color:        color,
			})
			idx = len(groups) - 1
			indexByName[name] = idx
		}
		groups[idx].Amount = groups[idx].Amount.Add(amount)
	}

	for i := range groups {
		groups[i].Percentage = ratioPercent(groups[i].Amount, totalExpenses)
	}
	return groups, totalExpenses
}

// SumByType returns the income and expense totals of the record set.
func SumByType(records []*entity.TransactionWithRefs) (income, expenses decimal.Decimal) {
	income = decimal.Zero
	expenses = decimal.Zero
	for _, r := range records {
		switch r.Transaction.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(r.Transaction.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(r.Transaction.Amount)
		}
	}
	return income, expenses
}

// SavingsRate computes (income - expenses) / income * 100, with 0 standing in
// when there is no income.
func SavingsRate(income, expenses decimal.Decimal) float64 {
	return ratioPercent(income.Sub(expenses), income)
}

// ratioPercent computes part/whole*100 rounded to two decimal places,
// substituting 0 when the denominator is zero instead of faulting.
func ratioPercent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(whole).Round(2).Float64()
	return pct
}
