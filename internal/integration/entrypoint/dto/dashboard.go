// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
)

// DashboardStatsResponse represents the current-month dashboard snapshot payload.
type DashboardStatsResponse struct {
	TotalBudget        float64               `json:"totalBudget"`
	TotalSpent         float64               `json:"totalSpent"`
	TotalIncome        float64               `json:"totalIncome"`
	Remaining          float64               `json:"remaining"`
	TransactionCount   int                   `json:"transactionCount"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// ToDashboardStatsResponse converts the dashboard output to its payload DTO.
func ToDashboardStatsResponse(output *dashboard.GetStatsOutput) DashboardStatsResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(t)
	}

	return DashboardStatsResponse{
		TotalBudget:        output.TotalBudget.InexactFloat64(),
		TotalSpent:         output.TotalSpent.InexactFloat64(),
		TotalIncome:        output.TotalIncome.InexactFloat64(),
		Remaining:          output.Remaining.InexactFloat64(),
		TransactionCount:   output.TransactionCount,
		RecentTransactions: recent,
	}
}
