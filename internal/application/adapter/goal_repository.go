// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by ID, scoped to the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a user with up to 5 most-recent
	// contributions each, ordered by priority descending then creation time
	// descending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GoalWithContributions, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and all of its contributions from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddContribution persists a contribution and the updated goal in a single
	// database transaction, so a contribution can never exist without the goal
	// balance that accounts for it.
	AddContribution(ctx context.Context, goal *entity.Goal, contribution *entity.GoalContribution) error
}
