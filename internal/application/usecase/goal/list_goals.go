// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// GoalOutput represents a single goal in the output, with its recent
// contributions and derived progress fields attached.
type GoalOutput struct {
	Goal          *entity.Goal
	Contributions []*entity.GoalContribution
	Progress      Progress
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals with computed progress.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := uc.now()
	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalOutput{
			Goal:          g.Goal,
			Contributions: g.Contributions,
			Progress:      CalculateProgress(g.Goal, now),
		})
	}
	return output, nil
}
