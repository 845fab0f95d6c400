// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// untouched. CurrentAmount is deliberately absent: the balance only changes
// through the contribution workflow.
type UpdateGoalInput struct {
	GoalID              uuid.UUID
	UserID              uuid.UUID
	Name                *string
	Description         *string
	TargetAmount        *decimal.Decimal
	Category            *entity.GoalCategory
	Priority            *entity.GoalPriority
	Deadline            *time.Time
	Status              *entity.GoalStatus
	AutoContribute      *bool
	MonthlyContribution *decimal.Decimal
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles explicit goal edits, including the user-driven
// status transitions (paused, cancelled).
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.Category != nil {
		if !isValidGoalCategory(*input.Category) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalCategory,
				"invalid goal category",
				domainerror.ErrInvalidGoalCategory,
			)
		}
		goal.Category = *input.Category
	}

	if input.Priority != nil {
		if !isValidGoalPriority(*input.Priority) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		goal.Priority = *input.Priority
	}

	if input.Status != nil {
		if !isValidGoalStatus(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'active', 'paused', 'completed', or 'cancelled'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = *input.Status
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.AutoContribute != nil {
		goal.AutoContribute = *input.AutoContribute
	}
	if input.MonthlyContribution != nil {
		goal.MonthlyContribution = *input.MonthlyContribution
	}
	if !goal.AutoContribute {
		goal.MonthlyContribution = decimal.Zero
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
