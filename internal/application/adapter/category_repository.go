// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindForUser retrieves the user's categories plus the shared defaults,
	// ordered by name ascending.
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// EnsureDefaults creates any of the given shared default categories that do
	// not exist yet, matched by name.
	EnsureDefaults(ctx context.Context, categories []*entity.Category) error
}
