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

// AddContributionInput represents the input for adding a goal contribution.
type AddContributionInput struct {
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// AddContributionOutput represents the output of adding a contribution.
type AddContributionOutput struct {
	Contribution *entity.GoalContribution
	Goal         *entity.Goal
}

// AddContributionUseCase records a manual funding event against a goal and
// rolls the goal balance forward. The contribution insert and the goal update
// are applied in one database transaction, so the balance can never drift
// from the contribution history.
//
// The goal's status is intentionally not checked before accepting the
// contribution: paused, completed and cancelled goals still accrue funds.
type AddContributionUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewAddContributionUseCase creates a new AddContributionUseCase instance.
func NewAddContributionUseCase(goalRepo adapter.GoalRepository) *AddContributionUseCase {
	return &AddContributionUseCase{
		goalRepo: goalRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the contribution workflow.
func (uc *AddContributionUseCase) Execute(ctx context.Context, input AddContributionInput) (*AddContributionOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContributionAmount,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

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

	contribution := entity.NewGoalContribution(
		goal.ID,
		input.UserID,
		input.Amount,
		input.Description,
		entity.ContributionTypeManual,
	)

	now := uc.now()
	goal.CurrentAmount = goal.CurrentAmount.Add(input.Amount)
	goal.LastContribution = &now
	goal.UpdatedAt = now

	// Completion compares the post-contribution balance against the stored
	// target. One-way: nothing here ever moves a goal out of completed, and
	// overshoot is kept as-is.
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = entity.GoalStatusCompleted
	}

	if err := uc.goalRepo.AddContribution(ctx, goal, contribution); err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}

	return &AddContributionOutput{
		Contribution: contribution,
		Goal:         goal,
	}, nil
}
