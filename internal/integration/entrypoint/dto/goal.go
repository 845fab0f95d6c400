// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/goal"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name                string           `json:"name" binding:"required"`
	Description         string           `json:"description"`
	TargetAmount        decimal.Decimal  `json:"targetAmount" binding:"required"`
	Category            string           `json:"category" binding:"required"`
	Priority            *string          `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Deadline            *time.Time       `json:"deadline,omitempty"`
	AutoContribute      bool             `json:"autoContribute"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update. Omitted
// fields are left untouched; the current amount is never editable here.
type UpdateGoalRequest struct {
	Name                *string          `json:"name,omitempty"`
	Description         *string          `json:"description,omitempty"`
	TargetAmount        *decimal.Decimal `json:"targetAmount,omitempty"`
	Category            *string          `json:"category,omitempty"`
	Priority            *string          `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Deadline            *time.Time       `json:"deadline,omitempty"`
	Status              *string          `json:"status,omitempty" binding:"omitempty,oneof=active paused completed cancelled"`
	AutoContribute      *bool            `json:"autoContribute,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty"`
}

// ContributeRequest represents the request body for a goal contribution.
type ContributeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ContributionResponse represents a goal contribution in API responses.
type ContributionResponse struct {
	ID               string    `json:"id"`
	GoalID           string    `json:"goalId"`
	Amount           float64   `json:"amount"`
	Description      string    `json:"description,omitempty"`
	ContributionDate time.Time `json:"contributionDate"`
	Type             string    `json:"type"`
}

// GoalResponse represents a goal in API responses with its derived progress
// fields and recent contributions.
type GoalResponse struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Description            string                 `json:"description,omitempty"`
	TargetAmount           float64                `json:"targetAmount"`
	CurrentAmount          float64                `json:"currentAmount"`
	Category               string                 `json:"category"`
	Priority               string                 `json:"priority"`
	Deadline               *string                `json:"deadline,omitempty"`
	Status                 string                 `json:"status"`
	AutoContribute         bool                   `json:"autoContribute"`
	MonthlyContribution    float64                `json:"monthlyContribution"`
	LastContribution       *time.Time             `json:"lastContribution,omitempty"`
	ProgressPercentage     float64                `json:"progressPercentage"`
	RemainingAmount        float64                `json:"remainingAmount"`
	DaysRemaining          *int                   `json:"daysRemaining"`
	RequiredMonthlySavings float64                `json:"requiredMonthlySavings"`
	Contributions          []ContributionResponse `json:"contributions,omitempty"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// SuggestionResponse represents one entry of the goal suggestion catalog.
type SuggestionResponse struct {
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	SuggestedAmount float64 `json:"suggestedAmount"`
	Priority        string  `json:"priority"`
	Icon            string  `json:"icon"`
}

// SuggestionListResponse represents the goal suggestion catalog payload.
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToContributionResponse converts a contribution entity to its DTO.
func ToContributionResponse(c *entity.GoalContribution) ContributionResponse {
	return ContributionResponse{
		ID:               c.ID.String(),
		GoalID:           c.GoalID.String(),
		Amount:           c.Amount.InexactFloat64(),
		Description:      c.Description,
		ContributionDate: c.ContributionDate,
		Type:             string(c.Type),
	}
}

// ToGoalResponse converts a goal with its progress fields to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, progress goal.Progress) GoalResponse {
	response := GoalResponse{
		ID:                     g.ID.String(),
		Name:                   g.Name,
		Description:            g.Description,
		TargetAmount:           g.TargetAmount.InexactFloat64(),
		CurrentAmount:          g.CurrentAmount.InexactFloat64(),
		Category:               string(g.Category),
		Priority:               string(g.Priority),
		Status:                 string(g.Status),
		AutoContribute:         g.AutoContribute,
		MonthlyContribution:    g.MonthlyContribution.InexactFloat64(),
		LastContribution:       g.LastContribution,
		ProgressPercentage:     progress.ProgressPercentage,
		RemainingAmount:        progress.RemainingAmount.InexactFloat64(),
		DaysRemaining:          progress.DaysRemaining,
		RequiredMonthlySavings: progress.RequiredMonthlySavings.InexactFloat64(),
		CreatedAt:              g.CreatedAt,
		UpdatedAt:              g.UpdatedAt,
	}

	if g.Deadline != nil {
		dateStr := g.Deadline.Format("2006-01-02")
		response.Deadline = &dateStr
	}

	return response
}

// ToGoalResponseWithContributions converts a full GoalOutput to a GoalResponse DTO.
func ToGoalResponseWithContributions(output *goal.GoalOutput) GoalResponse {
	response := ToGoalResponse(output.Goal, output.Progress)
	response.Contributions = make([]ContributionResponse, len(output.Contributions))
	for i, c := range output.Contributions {
		response.Contributions[i] = ToContributionResponse(c)
	}
	return response
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponseWithContributions(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}

// ToSuggestionListResponse converts the suggestion catalog to its payload DTO.
func ToSuggestionListResponse(suggestions []goal.Suggestion) SuggestionListResponse {
	responses := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = SuggestionResponse{
			Category:        string(s.Category),
			Name:            s.Name,
			Description:     s.Description,
			SuggestedAmount: s.SuggestedAmount.InexactFloat64(),
			Priority:        string(s.Priority),
			Icon:            s.Icon,
		}
	}
	return SuggestionListResponse{
		Suggestions: responses,
	}
}
