// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID              uuid.UUID
	Name                string
	Description         string
	TargetAmount        decimal.Decimal
	Category            entity.GoalCategory
	Priority            *entity.GoalPriority // Optional, defaults to medium
	Deadline            *time.Time
	AutoContribute      bool
	MonthlyContribution decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !isValidGoalCategory(input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCategory,
			"invalid goal category",
			domainerror.ErrInvalidGoalCategory,
		)
	}

	priority := entity.GoalPriorityMedium
	if input.Priority != nil {
		if !isValidGoalPriority(*input.Priority) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		priority = *input.Priority
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.Description,
		input.TargetAmount,
		input.Category,
		priority,
		input.Deadline,
		input.AutoContribute,
		input.MonthlyContribution,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// isValidGoalCategory validates the goal category tag.
func isValidGoalCategory(category entity.GoalCategory) bool {
	switch category {
	case entity.GoalCategoryEmergencyFund,
		entity.GoalCategoryVacation,
		entity.GoalCategoryDebtPayoff,
		entity.GoalCategoryHouseDownPayment,
		entity.GoalCategoryCarPurchase,
		entity.GoalCategoryEducation,
		entity.GoalCategoryRetirement,
		entity.GoalCategoryInvestment,
		entity.GoalCategoryOther:
		return true
	}
	return false
}

// isValidGoalPriority validates the goal priority.
func isValidGoalPriority(priority entity.GoalPriority) bool {
	return priority == entity.GoalPriorityLow ||
		priority == entity.GoalPriorityMedium ||
		priority == entity.GoalPriorityHigh
}

// isValidGoalStatus validates the goal status.
func isValidGoalStatus(status entity.GoalStatus) bool {
	return status == entity.GoalStatusActive ||
		status == entity.GoalStatusPaused ||
		status == entity.GoalStatusCompleted ||
		status == entity.GoalStatusCancelled
}
