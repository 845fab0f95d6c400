// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// recentContributionLimit is how many contributions travel with each goal on list reads.
const recentContributionLimit = 5

// goalPriorityOrder ranks the priority labels so high sorts first.
const goalPriorityOrder = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, created_at DESC"

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by ID, scoped to the given user.
func (r *goalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a user with their most recent
// contributions, ordered by priority descending then creation time descending.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GoalWithContributions, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("contribution_date DESC, created_at DESC")
		}).
		Where("user_id = ?", userID).
		Order(goalPriorityOrder).
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.GoalWithContributions, len(goalModels))
	for i, gm := range goalModels {
		// Preload cannot limit per parent row, so the tail is cut here.
		if len(gm.Contributions) > recentContributionLimit {
			gm.Contributions = gm.Contributions[:recentContributionLimit]
		}
		goals[i] = gm.ToEntityWithContributions()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal and all of its contributions from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalContributionModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.GoalModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}
		return nil
	})
}

// AddContribution persists a contribution and the updated goal in a single
// database transaction.
func (r *goalRepository) AddContribution(ctx context.Context, goal *entity.Goal, contribution *entity.GoalContribution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GoalContributionFromEntity(contribution)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.GoalFromEntity(goal)).Error; err != nil {
			return err
		}
		return nil
	})
}
