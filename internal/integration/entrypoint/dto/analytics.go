// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-planner/backend/internal/application/usecase/analytics"
)

// SpendingTrendResponse represents one day of the spending trend series.
type SpendingTrendResponse struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryBreakdownResponse represents one category group of the expense breakdown.
type CategoryBreakdownResponse struct {
	CategoryName string  `json:"categoryName"`
	Amount       float64 `json:"amount"`
	Color        string  `json:"color"`
	Percentage   float64 `json:"percentage"`
}

// BudgetAnalysisResponse represents the utilization of one budget.
type BudgetAnalysisResponse struct {
	BudgetName string  `json:"budgetName"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsResponse represents the full analytics payload.
type AnalyticsResponse struct {
	SpendingTrends    []SpendingTrendResponse     `json:"spendingTrends"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	BudgetAnalysis    []BudgetAnalysisResponse    `json:"budgetAnalysis"`
	TotalIncome       float64                     `json:"totalIncome"`
	TotalExpenses     float64                     `json:"totalExpenses"`
	SavingsRate       float64                     `json:"savingsRate"`
}

// ToAnalyticsResponse converts the analytics output to its payload DTO.
func ToAnalyticsResponse(output *analytics.GetAnalyticsOutput) AnalyticsResponse {
	trends := make([]SpendingTrendResponse, len(output.SpendingTrends))
	for i, t := range output.SpendingTrends {
		trends[i] = SpendingTrendResponse{
			Date:    t.Date,
			Income:  t.Income.InexactFloat64(),
			Expense: t.Expense.InexactFloat64(),
		}
	}

	breakdown := make([]CategoryBreakdownResponse, len(output.CategoryBreakdown))
	for i, b := range output.CategoryBreakdown {
		breakdown[i] = CategoryBreakdownResponse{
			CategoryName: b.CategoryName,
			Amount:       b.Amount.InexactFloat64(),
			Color:        b.Color,
			Percentage:   b.Percentage,
		}
	}

	analysis := make([]BudgetAnalysisResponse, len(output.BudgetAnalysis))
	for i, a := range output.BudgetAnalysis {
		analysis[i] = BudgetAnalysisResponse{
			BudgetName: a.BudgetName,
			Budgeted:   a.Budgeted.InexactFloat64(),
			Spent:      a.Spent.InexactFloat64(),
			Remaining:  a.Remaining.InexactFloat64(),
			Percentage: a.Percentage,
		}
	}

	return AnalyticsResponse{
		SpendingTrends:    trends,
		CategoryBreakdown: breakdown,
		BudgetAnalysis:    analysis,
		TotalIncome:       output.TotalIncome.InexactFloat64(),
		TotalExpenses:     output.TotalExpenses.InexactFloat64(),
		SavingsRate:       output.SavingsRate,
	}
}
