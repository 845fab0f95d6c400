// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByUserID retrieves all budgets for a given user, ordered by creation
	// time descending. Budgets are never date-filtered.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
}
