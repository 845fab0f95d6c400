// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// Suggestion is a templated goal a user can start from.
type Suggestion struct {
	Category        entity.GoalCategory `json:"category"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	SuggestedAmount decimal.Decimal     `json:"suggestedAmount"`
	Priority        entity.GoalPriority `json:"priority"`
	Icon            string              `json:"icon"`
}

// GetSuggestionsOutput represents the output of the suggestion catalog.
type GetSuggestionsOutput struct {
	Suggestions []Suggestion
}

// GetSuggestionsUseCase serves the static goal suggestion catalog.
type GetSuggestionsUseCase struct{}

// NewGetSuggestionsUseCase creates a new GetSuggestionsUseCase instance.
func NewGetSuggestionsUseCase() *GetSuggestionsUseCase {
	return &GetSuggestionsUseCase{}
}

// Execute returns the suggestion catalog.
func (uc *GetSuggestionsUseCase) Execute(_ context.Context) (*GetSuggestionsOutput, error) {
	return &GetSuggestionsOutput{
		Suggestions: []Suggestion{
			{
				Category:        entity.GoalCategoryEmergencyFund,
				Name:            "Emergency Fund",
				Description:     "Build 3-6 months of expenses for unexpected situations",
				SuggestedAmount: decimal.NewFromInt(5000),
				Priority:        entity.GoalPriorityHigh,
				Icon:            "🛡️",
			},
			{
				Category:        entity.GoalCategoryVacation,
				Name:            "Dream Vacation",
				Description:     "Save for that special trip you've been planning",
				SuggestedAmount: decimal.NewFromInt(3000),
				Priority:        entity.GoalPriorityMedium,
				Icon:            "✈️",
			},
			{
				Category:        entity.GoalCategoryHouseDownPayment,
				Name:            "House Down Payment",
				Description:     "Save for your future home down payment",
				SuggestedAmount: decimal.NewFromInt(50000),
				Priority:        entity.GoalPriorityHigh,
				Icon:            "🏠",
			},
			{
				Category:        entity.GoalCategoryCarPurchase,
				Name:            "New Car",
				Description:     "Save for a reliable vehicle",
				SuggestedAmount: decimal.NewFromInt(15000),
				Priority:        entity.GoalPriorityMedium,
				Icon:            "🚗",
			},
		},
	}, nil
}
