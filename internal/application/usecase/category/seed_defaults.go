// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// defaultCatalog is the shared category catalog created at startup. These
// categories have no owner and are visible to every user.
var defaultCatalog = []struct {
	name  string
	color string
	icon  string
	typ   entity.CategoryType
}{
	{"Food & Dining", "#ff6b6b", "restaurant", entity.CategoryTypeExpense},
	{"Transportation", "#4ecdc4", "directions_car", entity.CategoryTypeExpense},
	{"Entertainment", "#45b7d1", "movie", entity.CategoryTypeExpense},
	{"Shopping", "#f9ca24", "shopping_cart", entity.CategoryTypeExpense},
	{"Bills & Utilities", "#6c5ce7", "receipt", entity.CategoryTypeExpense},
	{"Healthcare", "#a29bfe", "local_hospital", entity.CategoryTypeExpense},
	{"Salary", "#00b894", "attach_money", entity.CategoryTypeIncome},
	{"Freelance", "#00cec9", "work", entity.CategoryTypeIncome},
}

// SeedDefaultsUseCase ensures the shared default categories exist.
type SeedDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates any missing default categories, matched by name.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context) error {
	categories := make([]*entity.Category, 0, len(defaultCatalog))
	for _, c := range defaultCatalog {
		categories = append(categories, entity.NewCategory(c.name, c.color, c.icon, c.typ, nil))
	}

	if err := uc.categoryRepo.EnsureDefaults(ctx, categories); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
